package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Decl    bool
	Resolve bool
	Group   bool
	Narrow  bool
	Pred    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Decl = boolEnv("DOCSHAPE_DEBUG_DECL")
	d.Resolve = boolEnv("DOCSHAPE_DEBUG_RESOLVE")
	d.Group = boolEnv("DOCSHAPE_DEBUG_GROUP")
	d.Narrow = boolEnv("DOCSHAPE_DEBUG_NARROW")
	d.Pred = boolEnv("DOCSHAPE_DEBUG_PRED")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Decl() bool {
	return d.Decl
}
func Resolve() bool {
	return d.Resolve
}
func Group() bool {
	return d.Group
}
func Narrow() bool {
	return d.Narrow
}
func Pred() bool {
	return d.Pred
}
