package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const fadeDispatchScript = `
__result := fade(__from, __to, __base)
`

// ScriptFade asks a tengo script for the fade duration of each transition.
// The script must define `fade := func(from, to, base) { ... }` returning
// seconds. Any failure falls back to the base duration.
type ScriptFade struct {
	path     string
	base     float64
	compiled *tengo.Compiled
}

// NewScriptFade compiles src. path is only used in messages.
func NewScriptFade(path string, src []byte, base float64) (*ScriptFade, error) {
	full := string(src) + "\n" + fadeDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__from", "")
	_ = script.Add("__to", "")
	_ = script.Add("__base", base)

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("fade script %s: compile: %w", path, err)
	}
	return &ScriptFade{path: path, base: base, compiled: compiled}, nil
}

func (s *ScriptFade) FadeDuration(from, to string) float64 {
	if s == nil || s.compiled == nil {
		return 0
	}
	d, err := s.eval(from, to)
	if err != nil {
		log.Printf("fade script %s: %s -> %s: %v", s.path, from, to, err)
		return s.base
	}
	if d < 0 {
		return 0
	}
	return d
}

func (s *ScriptFade) eval(from, to string) (float64, error) {
	if err := s.compiled.Set("__from", from); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("__to", to); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("__base", s.base); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, err
	}

	res := s.compiled.Get("__result")
	switch res.ValueType() {
	case "float", "int":
		return res.Float(), nil
	default:
		return 0, fmt.Errorf("fade returned %s, want number", res.ValueType())
	}
}
