package view

import (
	"github.com/dbpibus/dbpibus/internal/event"
	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/shift"
)

type NodeKind int

const (
	ContainerNode NodeKind = iota
	SettingNode
	TestsNode
)

// Node is one entry in the service menu. The tree is built once and never
// changed; where the operator is in it lives in ServiceMenu.
type Node struct {
	Kind  NodeKind
	Title string

	// ContainerNode
	Children []*Node

	// SettingNode
	Key     settings.Key
	Options []Option

	// TestsNode
	Tests []Test
}

type Option struct {
	Title string
	Value string
}

// Test is a menu entry that plays an animation on demand.
type Test struct {
	Title string
	New   func(env Env) View
}

// MenuTree is the root of the service menu.
func MenuTree() *Node {
	return menuTree
}

var menuTree = &Node{
	Kind:  ContainerNode,
	Title: "Main Menu",
	Children: []*Node{
		{
			Kind:  ContainerNode,
			Title: "Adjustments",
			Children: []*Node{
				{
					Kind:  SettingNode,
					Title: "Show Shift Anims",
					Key:   settings.ShowShiftAnim,
					Options: []Option{
						{Title: "Always", Value: settings.Always},
						{Title: "Only in-season", Value: settings.OnlyInSeason},
						{Title: "Never", Value: settings.Never},
					},
				},
				{
					Kind:  SettingNode,
					Title: "Show Event Anims",
					Key:   settings.ShowEventAnim,
					Options: []Option{
						{Title: "Always", Value: settings.Always},
						{Title: "Never", Value: settings.Never},
					},
				},
				{
					Kind:  SettingNode,
					Title: "LCD Color",
					Key:   settings.LcdColor,
					Options: []Option{
						{Title: "Current Shift", Value: settings.CurrentShift},
						{Title: "Dawn Guard", Value: settings.DawnGuard},
						{Title: "Alpha Flight", Value: settings.AlphaFlight},
						{Title: "Night Watch", Value: settings.NightWatch},
						{Title: "Zeta Shift", Value: settings.ZetaShift},
						{Title: "Omega Shift", Value: settings.OmegaShift},
					},
				},
				yesNo("Show Time: Run", settings.ShowTimeInRun),
				yesNo("Show Time: Pre", settings.ShowTimeInPreseason),
				yesNo("Show Time: Off", settings.ShowTimeInOffseason),
				{
					Kind:  SettingNode,
					Title: "Time Format",
					Key:   settings.TimeFormat,
					Options: []Option{
						{Title: "12 Hour", Value: settings.Hour12},
						{Title: "24 Hour", Value: settings.Hour24},
					},
				},
				{
					Kind:  SettingNode,
					Title: "Date Format",
					Key:   settings.DateFormat,
					Options: []Option{
						{Title: "YYYY-MM-DD", Value: settings.YYYYMMDD},
						{Title: "DD/MM/YYYY", Value: settings.DDMMYYYY},
						{Title: "MM/DD/YYYY", Value: settings.MMDDYYYY},
					},
				},
				{
					Kind:  SettingNode,
					Title: "PT/CR Format",
					Key:   settings.PointsCrashes,
					Options: []Option{
						{Title: "Separate", Value: settings.Separate},
						{Title: "PT:CR", Value: settings.PTCR},
					},
				},
			},
		},
		{
			Kind:  ContainerNode,
			Title: "Tests",
			Children: []*Node{
				{
					Kind:  TestsNode,
					Title: "Shift Anims",
					Tests: shiftTests(),
				},
				{
					Kind:  TestsNode,
					Title: "Event Anims",
					Tests: eventTests(event.Point, event.Crash, event.Splat, event.Stop),
				},
			},
		},
	},
}

func yesNo(title string, key settings.Key) *Node {
	return &Node{
		Kind:  SettingNode,
		Title: title,
		Key:   key,
		Options: []Option{
			{Title: "Yes", Value: settings.Yes},
			{Title: "No", Value: settings.No},
		},
	}
}

func shiftTests() []Test {
	tests := make([]Test, 0, len(shift.All))
	for _, s := range shift.All {
		tests = append(tests, Test{
			Title: s.String(),
			New:   func(env Env) View { return NewShiftTransition(env, s, PriorityTest) },
		})
	}
	return tests
}

func eventTests(kinds ...event.Kind) []Test {
	tests := make([]Test, 0, len(kinds))
	for _, k := range kinds {
		tests = append(tests, Test{
			Title: k.String(),
			New:   func(env Env) View { return NewEventAnimation(env, k, PriorityTest) },
		})
	}
	return tests
}
