/*
Package feature defines the contract every feature panel implements: a
registry of named feature functions over a call-scoped input, computed
either wholesale or through a selection, with per-call error isolation.

A feature function receives everything it needs as parameters and holds no
state between calls, so registries are safe for concurrent use
*/
package feature

import (
	"encoding/json"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"github.com/bioseqlab/seqfeat/pkg/refset"
)

// ErrorKey is the single attribute key under which a failed extractor call
// is reported
const ErrorKey = "error"

// AttributeMap is the unit of extractor output: feature name (or fanned-out
// subkey) to a scalar value. Values are only ever float64, int, string or
// bool - never raw collections
type AttributeMap map[string]interface{}

// ErrorMap is the representation of a failed extractor call. Partial
// results from the same call are discarded, never mixed with the error
func ErrorMap(msg string) AttributeMap {
	return AttributeMap{ErrorKey: msg}
}

// IsError reports whether m is the result of a failed call
func (m AttributeMap) IsError() bool {
	_, ok := m[ErrorKey]
	return ok
}

// Params configures one selected feature
type Params struct {
	// Enabled nil means enabled (absence of the flag defaults to true)
	Enabled *bool
	// Args are per-feature arguments merged over the call arguments
	Args map[string]interface{}
}

// UnmarshalJSON accepts either a bare boolean or an object of the form
// {"enabled": bool, ...args}
func (p *Params) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		p.Enabled = &b
		p.Args = nil
		return nil
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["enabled"]; ok {
		if e, ok := v.(bool); ok {
			p.Enabled = &e
		}
		delete(raw, "enabled")
	} else {
		p.Enabled = nil
	}
	p.Args = raw
	return nil
}

func (p Params) enabled() bool {
	return p.Enabled == nil || *p.Enabled
}

// Selection maps feature name to its parameters. A nil Selection means
// "compute every feature with defaults". Names that match no registered
// feature are silently ignored, so stale selection payloads degrade
// gracefully instead of failing
type Selection map[string]Params

// Input is the call-scoped context a feature function computes over
type Input struct {
	// Seq is the current (sub)sequence, as dispatched by the caller
	Seq string
	// Ref is the shared, read-only reference context, or nil
	Ref *refset.Set
	// Args are the merged call + per-feature arguments
	Args map[string]interface{}
}

// FloatArg returns a numeric argument, or def when absent or of the wrong
// type
func (in Input) FloatArg(name string, def float64) float64 {
	switch v := in.Args[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// StringArg returns a string argument, or def when absent
func (in Input) StringArg(name string, def string) string {
	if v, ok := in.Args[name].(string); ok {
		return v
	}
	return def
}

// Func computes one feature. It may return a scalar, or a
// map[string]float64 which is either fanned out into the attribute map or
// reduced to its mean, depending on how the feature was registered.
// Returning (nil, nil) omits the feature from the result, which is how
// features that need an absent collaborator (e.g. a reference set) bow out
// of a default-all computation
type Func func(in Input) (interface{}, error)

type spec struct {
	fn     Func
	reduce bool
}

// Registry maps feature names to feature functions for one panel. Names are
// checked at registration time: registering an empty or duplicate name
// panics, since that is a wiring bug, not a runtime condition
type Registry struct {
	panel string
	feats map[string]spec
	names []string
}

// NewRegistry returns an empty registry for the named panel
func NewRegistry(panel string) *Registry {
	return &Registry{panel: panel, feats: make(map[string]spec)}
}

// Register adds a feature whose map-shaped results fan out into the
// attribute map under the keys the function returns
func (r *Registry) Register(name string, fn Func) {
	r.register(name, spec{fn: fn})
}

// RegisterReduced adds a feature whose map-shaped results are reduced to
// their arithmetic mean and stored under the feature name
func (r *Registry) RegisterReduced(name string, fn Func) {
	r.register(name, spec{fn: fn, reduce: true})
}

func (r *Registry) register(name string, s spec) {
	if name == "" {
		panic("feature: registered an empty feature name on panel " + r.panel)
	}
	if _, dup := r.feats[name]; dup {
		panic("feature: duplicate feature " + name + " on panel " + r.panel)
	}
	if s.fn == nil {
		panic("feature: nil function for feature " + name + " on panel " + r.panel)
	}
	r.feats[name] = s
	r.names = append(r.names, name)
	slices.Sort(r.names)
}

// Panel returns the panel name this registry belongs to
func (r *Registry) Panel() string { return r.panel }

// Names returns the registered feature names in sorted order
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// ComputeSingle computes the selected features (or all of them, for a nil
// selection) over one input. Any error or panic inside a feature collapses
// the whole call to a single error entry; unknown selection keys are
// skipped
func (r *Registry) ComputeSingle(in Input, sel Selection) (out AttributeMap) {
	out = make(AttributeMap)

	defer func() {
		if rec := recover(); rec != nil {
			out = ErrorMap(fmt.Sprintf("%s: %v", r.panel, rec))
		}
	}()

	for _, name := range r.names {
		args := in.Args
		if sel != nil {
			p, ok := sel[name]
			if !ok || !p.enabled() {
				continue
			}
			args = mergeArgs(in.Args, p.Args)
		}
		s := r.feats[name]
		val, err := s.fn(Input{Seq: in.Seq, Ref: in.Ref, Args: args})
		if err != nil {
			return ErrorMap(fmt.Sprintf("%s: %v", r.panel, err))
		}
		place(out, name, val, s.reduce)
	}

	return out
}

func mergeArgs(base, over map[string]interface{}) map[string]interface{} {
	if len(over) == 0 {
		return base
	}
	merged := make(map[string]interface{}, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

func place(out AttributeMap, name string, val interface{}, reduce bool) {
	switch v := val.(type) {
	case nil:
		// feature opted out
	case map[string]float64:
		if reduce {
			out[name] = Round(mean(v), 4)
			return
		}
		for k, f := range v {
			out[k] = Round(f, 4)
		}
	case float64:
		out[name] = Round(v, 4)
	default:
		out[name] = v
	}
}

func mean(m map[string]float64) float64 {
	if len(m) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range m {
		sum += v
	}
	return sum / float64(len(m))
}

// Round rounds v to the given number of decimal places. NaN and infinities
// pass through unchanged
func Round(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
