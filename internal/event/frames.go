package event

import (
	"time"

	"github.com/dbpibus/dbpibus/internal/anim"
)

func f(ms int, line1, line2 string) anim.Frame {
	return anim.Frame{Duration: time.Duration(ms) * time.Millisecond, Line1: line1, Line2: line2}
}

var frames = map[Kind][]anim.Frame{
	Point: anim.MustFrames(pointGet),
	Splat: anim.MustFrames(bugSplat),
	Stop:  anim.MustFrames(busStop),
	Crash: anim.MustFrames(crash),
}

var pointGet = []anim.Frame{
	f(100, "   -            ", "                "),
	f(100, "   +            ", "                "),
	f(100, "   P|           ", "                "),
	f(100, "   P+           ", "                "),
	f(100, "   PO-          ", "                "),
	f(100, "   PO+          ", "                "),
	f(100, "   POI|         ", "                "),
	f(100, "   POI+         ", "                "),
	f(100, "   POIN-        ", "                "),
	f(100, "   POIN+        ", "                "),
	f(100, "   POINT |      ", "                "),
	f(100, "   POINT +      ", "                "),
	f(100, "   POINT G-     ", "                "),
	f(100, "   POINT G+     ", "                "),
	f(100, "   POINT GE|    ", "                "),
	f(100, "   POINT GE+    ", "                "),
	f(100, "   POINT GET-   ", "                "),
	f(100, "   POINT GET+   ", "                "),
	f(500, "   POINT GET!   ", "                "),
	f(100, "   POINT GET!   ", "  .             "),
	f(100, "   POINT GET!   ", "  +       .     "),
	f(100, "   POINT GET!   ", "  *   .   +     "),
	f(100, "   POINT GET!   ", "      +   *   . "),
	f(100, "   POINT GET!   ", " .    *       + "),
	f(100, "   POINT GET!   ", " +      .     * "),
	f(100, "   POINT GET!   ", " *      +   .   "),
	f(100, "   POINT GET!   ", "    .   *   +   "),
	f(100, "   POINT GET!   ", ".   +       *   "),
	f(100, "   POINT GET!   ", "+   *  .        "),
	f(100, "   POINT GET!   ", "*      +     .  "),
	f(100, "   POINT GET!   ", "   .   *     +  "),
	f(100, "   POINT GET!   ", "   +      .  *  "),
	f(100, "   POINT GET!   ", "   *      +    ."),
	f(100, "   POINT GET!   ", "          *    +"),
	f(100, "   POINT GET!   ", "               *"),
	f(3000, "   POINT GET!   ", "                "),
}

var bugSplat = []anim.Frame{
	f(120, "                ", "              }<"),
	f(120, "                ", "            }<  "),
	f(120, "                ", "          }<    "),
	f(120, "                ", "        }<      "),
	f(120, "                ", "      }<        "),
	f(120, "                ", "     }<         "),
	f(200, "                ", "    *           "),
	f(200, "     SPLAT!     ", "   \\*/          "),
	f(200, "     SPLAT!     ", "  -=*=-         "),
	f(200, "     SPLAT!     ", "   /*\\          "),
	f(500, "   BUG SPLAT!   ", "    *           "),
	f(250, "                ", "    *           "),
	f(250, "   BUG SPLAT!   ", "    *           "),
	f(250, "                ", "    *           "),
	f(3000, "   BUG SPLAT!   ", "    * ew        "),
}

var busStop = []anim.Frame{
	f(150, "           [S]  ", "[==]            "),
	f(150, "           [S]  ", " [==]           "),
	f(150, "           [S]  ", "  [==]          "),
	f(150, "           [S]  ", "   [==]         "),
	f(150, "           [S]  ", "    [==]        "),
	f(200, "           [S]  ", "     [==]       "),
	f(250, "           [S]  ", "      [==]      "),
	f(300, "           [S]  ", "       [==]     "),
	f(400, "           [S]  ", "        [==]    "),
	f(500, "           [S]  ", "         [==]   "),
	f(300, "    BUS STOP    ", "         [==]   "),
	f(300, "                ", "         [==]   "),
	f(300, "    BUS STOP    ", "         [==]   "),
	f(300, "                ", "         [==]   "),
	f(3000, "   BUS STOP!    ", "  Thank you!    "),
}

var crash = []anim.Frame{
	f(100, "                ", "[==]            "),
	f(100, "                ", "  [==]          "),
	f(100, "                ", "    [==]        "),
	f(100, "                ", "      [==]      "),
	f(100, "                ", "       [==]     "),
	f(100, "                ", "        /==/    "),
	f(100, "                ", "         \\==\\   "),
	f(150, "       *        ", "          [==]# "),
	f(150, "     * # *      ", "        #  [==]#"),
	f(150, "   *  ###  *    ", "      # # *[==]#"),
	f(300, "     CRASH!     ", "   . # * # [==]#"),
	f(200, "                ", "   . # * # [==]#"),
	f(300, "     CRASH!     ", "   . # * # [==]#"),
	f(200, "                ", "   . # * # [==]#"),
	f(3000, "     CRASH!     ", "   Tow truck... "),
}
