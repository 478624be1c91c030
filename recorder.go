package flex

import (
	"fmt"
	"strings"
)

// Op names an Engine method seen by a RecordingEngine.
type Op uint8

const (
	OpCreate Op = iota + 1
	OpFree
	OpAdd
	OpInsert
	OpRemove
	OpSetSize
	OpSetLocation
	OpSetPadding
	OpSetMargin
	OpSetEnumPropsBatch
	OpSetMisc
	OpLayout
)

var opNames = [...]string{
	OpCreate:            "create",
	OpFree:              "free",
	OpAdd:               "add",
	OpInsert:            "insert",
	OpRemove:            "remove",
	OpSetSize:           "set_size",
	OpSetLocation:       "set_location",
	OpSetPadding:        "set_padding",
	OpSetMargin:         "set_margin",
	OpSetEnumPropsBatch: "set_enum_props_batch",
	OpSetMisc:           "set_misc",
	OpLayout:            "layout",
}

func (o Op) String() string {
	if int(o) < len(opNames) && opNames[o] != "" {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Call is one recorded mutating engine call. Handle is the node the call
// targets (the parent for tree edits, the new node for Create). Args holds
// the remaining arguments in call order: child handles, indexes and the
// packed enum word are stored as exact float64 values.
type Call struct {
	Op     Op
	Handle Handle
	Args   []float64
}

func (c Call) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%d", c.Op, c.Handle)
	for _, a := range c.Args {
		fmt.Fprintf(&sb, ", %v", a)
	}
	sb.WriteString(")")
	return sb.String()
}

// RecordingEngine wraps an Engine and records every mutating call before
// forwarding it. Frame reads are forwarded without being recorded.
type RecordingEngine struct {
	inner Engine
	calls []Call
}

// Ensure RecordingEngine implements Engine.
var _ Engine = (*RecordingEngine)(nil)

// NewRecordingEngine wraps inner. A nil inner wraps a fresh in-process engine.
func NewRecordingEngine(inner Engine) *RecordingEngine {
	if inner == nil {
		inner = NewEngine()
	}
	return &RecordingEngine{inner: inner}
}

// Unwrap returns the wrapped engine.
func (r *RecordingEngine) Unwrap() Engine {
	return r.inner
}

// Calls returns a copy of the recorded calls in order.
func (r *RecordingEngine) Calls() []Call {
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many calls of op were recorded.
func (r *RecordingEngine) Count(op Op) int {
	n := 0
	for _, c := range r.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets every recorded call.
func (r *RecordingEngine) Reset() {
	r.calls = r.calls[:0]
}

func (r *RecordingEngine) record(op Op, h Handle, args ...float64) {
	r.calls = append(r.calls, Call{Op: op, Handle: h, Args: args})
}

func (r *RecordingEngine) Create() Handle {
	h := r.inner.Create()
	r.record(OpCreate, h)
	return h
}

func (r *RecordingEngine) Free(h Handle) {
	r.record(OpFree, h)
	r.inner.Free(h)
}

func (r *RecordingEngine) Add(parent, child Handle) {
	r.record(OpAdd, parent, float64(child))
	r.inner.Add(parent, child)
}

func (r *RecordingEngine) Insert(parent, child Handle, index int) {
	r.record(OpInsert, parent, float64(child), float64(index))
	r.inner.Insert(parent, child, index)
}

func (r *RecordingEngine) Remove(parent Handle, index int) {
	r.record(OpRemove, parent, float64(index))
	r.inner.Remove(parent, index)
}

func (r *RecordingEngine) SetSize(h Handle, width, height float32) {
	r.record(OpSetSize, h, float64(width), float64(height))
	r.inner.SetSize(h, width, height)
}

func (r *RecordingEngine) SetLocation(h Handle, top, right, bottom, left float32) {
	r.record(OpSetLocation, h, float64(top), float64(right), float64(bottom), float64(left))
	r.inner.SetLocation(h, top, right, bottom, left)
}

func (r *RecordingEngine) SetPadding(h Handle, top, right, bottom, left float32) {
	r.record(OpSetPadding, h, float64(top), float64(right), float64(bottom), float64(left))
	r.inner.SetPadding(h, top, right, bottom, left)
}

func (r *RecordingEngine) SetMargin(h Handle, top, right, bottom, left float32) {
	r.record(OpSetMargin, h, float64(top), float64(right), float64(bottom), float64(left))
	r.inner.SetMargin(h, top, right, bottom, left)
}

func (r *RecordingEngine) SetEnumPropsBatch(h Handle, packed uint32) {
	r.record(OpSetEnumPropsBatch, h, float64(packed))
	r.inner.SetEnumPropsBatch(h, packed)
}

func (r *RecordingEngine) SetMisc(h Handle, grow, shrink float32, order int32, basis float32) {
	r.record(OpSetMisc, h, float64(grow), float64(shrink), float64(order), float64(basis))
	r.inner.SetMisc(h, grow, shrink, order, basis)
}

func (r *RecordingEngine) Layout(h Handle) {
	r.record(OpLayout, h)
	r.inner.Layout(h)
}

func (r *RecordingEngine) FrameX(h Handle) float32      { return r.inner.FrameX(h) }
func (r *RecordingEngine) FrameY(h Handle) float32      { return r.inner.FrameY(h) }
func (r *RecordingEngine) FrameWidth(h Handle) float32  { return r.inner.FrameWidth(h) }
func (r *RecordingEngine) FrameHeight(h Handle) float32 { return r.inner.FrameHeight(h) }
