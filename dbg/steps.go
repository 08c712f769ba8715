// Package dbg has helpers for looking at constructions while debugging.
package dbg

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/euclid/construct"
	"github.com/osuushi/euclid/geom"
)

// Colors toggles terminal colouring of Steps.
var Colors = true

// Steps lists a construction one element per line. Points are named p<i> and
// elements e<i> by their index in ctx.
func Steps(ctx *construct.Context) string {
	au := aurora.NewAurora(Colors)
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %d steps, %d points\n", Name(ctx), ctx.Steps(), ctx.NumPoints())

	var given []string
	produced := make(map[int][]string)
	for i := 0; i < ctx.NumPoints(); i++ {
		origin := ctx.Origin(i)
		label := fmt.Sprintf("p%d", i)
		if origin.Given {
			given = append(given, fmt.Sprintf("%s%v", label, ctx.Point(i)))
		} else {
			produced[origin.B] = append(produced[origin.B], label)
		}
	}
	fmt.Fprintf(&b, "  %s %s\n", au.Faint("given"), strings.Join(given, " "))

	for i, e := range ctx.Elements() {
		line := fmt.Sprintf("e%d = %s(%s)", i, au.Cyan(e.Def().Tool), arguments(ctx, e.Def()))
		if i < ctx.NumGivenElements() {
			line = au.Faint(line).String()
		}
		if points := produced[i]; len(points) > 0 {
			line += " " + au.Green("→ "+strings.Join(points, " ")).String()
		}
		fmt.Fprintf(&b, "  %s\n", line)
	}
	return b.String()
}

func arguments(ctx *construct.Context, def geom.Definition) string {
	var args []string
	if def.Base != nil {
		if i, ok := ctx.ElementIndex(*def.Base); ok {
			args = append(args, fmt.Sprintf("e%d", i))
		} else {
			args = append(args, def.Base.String())
		}
	}
	for _, p := range def.Points {
		if i, ok := ctx.PointIndex(p); ok {
			args = append(args, fmt.Sprintf("p%d", i))
		} else {
			args = append(args, p.String())
		}
	}
	return strings.Join(args, ", ")
}

// Dump pretty prints any value, following pointers.
func Dump(v interface{}) string {
	return pretty.Sprint(v)
}
