package controller

import (
	"fmt"
	"strconv"
	"strings"
)

// The LCD is 16x2. Every line goes through clip so a bad format
// string can never push the cursor off the visible area.
const displayCols = 16

// Longest value that still fits on a prompt line: "-> " + buffer + "_".
const maxEntry = displayCols - 4

const (
	lineCutLength    = "CUT LENGTH (in):"
	lineCutCount     = "NUMBER OF CUTS:"
	lineOverrideCode = "OVERRIDE CODE:"
)

func clip(s string) string {
	if len(s) > displayCols {
		return s[:displayCols]
	}
	return s
}

func promptLine(buf []byte) string {
	return clip("-> " + string(buf) + "_")
}

func fmtInches(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func screenIdle() (string, string) {
	return "WIRE CUTTER", "PRESS ANY KEY"
}

func screenConfirm(spec JobSpec) (string, string) {
	l1 := fmt.Sprintf("%sin x %d", fmtInches(spec.CutLength), spec.CutCount)
	return clip(l1), "OK? (#=Y, *=N) _"
}

func screenSafetyFail(s Sensor) (string, string) {
	return clip("FAIL: " + s.Label()), "#=RETRY  *=OVRD"
}

func screenCutting(p CutProgress) (string, string) {
	return "CUTTING", clip(fmt.Sprintf("CUT %d OF %d", p.Completed+1, p.Target))
}

func screenDone(p CutProgress) (string, string) {
	return "JOB COMPLETE", clip(fmt.Sprintf("%d CUTS", p.Completed))
}

func screenFault(periph string) (string, string) {
	l1 := "FAULT"
	if periph != "" {
		l1 = "FAULT: " + strings.ToUpper(periph)
	}
	return clip(l1), "RESTART REQUIRED"
}
