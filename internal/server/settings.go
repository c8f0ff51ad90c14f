package server

import (
	"context"
	"net/http"
	"strings"

	go_json "github.com/goccy/go-json"

	"github.com/dbpibus/dbpibus/internal/settings"
	"github.com/dbpibus/dbpibus/internal/xerrors"
	"github.com/dbpibus/dbpibus/internal/xhttp"
	"github.com/dbpibus/dbpibus/internal/xslog"
)

// maxSettingBody is far more than any valid request needs.
const maxSettingBody = 1 << 10

// SettingsEditor is satisfied by *settings.Settings.
type SettingsEditor interface {
	All() map[string]string
	Set(ctx context.Context, key settings.Key, value string) error
}

type SettingsHandler struct {
	settings SettingsEditor
}

func NewSettingsHandler(s SettingsEditor) *SettingsHandler {
	return &SettingsHandler{settings: s}
}

// HandleList returns every stored setting.
func (h *SettingsHandler) HandleList(w http.ResponseWriter, _ *http.Request) {
	xhttp.SetHeaderNoStore(w)
	xhttp.WriteOK(w, h.settings.All())
}

type setRequest struct {
	Value string `json:"value"`
}

func (r setRequest) validate() map[string]string {
	if strings.TrimSpace(r.Value) == "" {
		return map[string]string{"value": "required"}
	}
	return nil
}

// HandleSet changes one setting, the same as picking it in the service menu.
func (h *SettingsHandler) HandleSet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := settings.Key(r.PathValue("key"))

	if _, ok := settings.Lookup(key); !ok {
		xerrors.WriteError(ctx, w, xerrors.UnknownSetting(key))
		return
	}

	var req setRequest
	if err := go_json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSettingBody)).Decode(&req); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Wrap(http.StatusBadRequest, "invalid JSON body", err))
		return
	}
	if fields := req.validate(); fields != nil {
		xerrors.WriteError(ctx, w, xerrors.Invalid(fields))
		return
	}

	// Set keeps the new value in memory even when the store write fails.
	if err := h.settings.Set(ctx, key, req.Value); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Setting(key, err))
		return
	}

	xslog.FromContext(ctx).InfoContext(ctx, "setting changed over http", xslog.Setting(string(key), req.Value))
	xhttp.WriteOK(w, map[string]string{string(key): req.Value})
}
