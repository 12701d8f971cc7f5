package interp

import (
	"github.com/kolkov/glox/internal/types"
)

// Class is a Lox class: a name, an optional superclass, and a method
// table. Classes are callable; calling one allocates an instance and
// runs its init method when present.
type Class struct {
	Name    string
	Super   *Class // nil if the class has no superclass
	Methods map[string]*Function
}

// FindMethod looks up a method by name, walking the superclass chain.
// The search stops at the first match or at the root.
func (c *Class) FindMethod(name string) *Function {
	for class := c; class != nil; class = class.Super {
		if m, ok := class.Methods[name]; ok {
			return m
		}
	}
	return nil
}

// Arity returns the arity of the init method, or 0 when there is none.
func (c *Class) Arity() int {
	if init := c.FindMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance. If the class (or an ancestor)
// defines init, it runs bound to the new instance with the call
// arguments. The constructor call always yields the instance,
// whatever init itself returns.
func (c *Class) Call(i *Interp, args []types.Value) (types.Value, error) {
	inst := &Instance{class: c, fields: make(map[string]types.Value)}
	if init := c.FindMethod("init"); init != nil {
		if _, err := init.bind(inst).Call(i, args); err != nil {
			return types.Nil(), err
		}
	}
	return types.Obj(inst), nil
}

func (c *Class) TypeName() string { return "class" }

func (c *Class) String() string { return c.Name }

// Instance is a class instance: a class reference plus a mutable field
// table. Fields need no declaration; assignment creates them. The same
// instance may be reachable through many bindings, and field mutation
// is visible through every one of them.
type Instance struct {
	class  *Class
	fields map[string]types.Value
}

// Class returns the instance's class.
func (inst *Instance) Class() *Class { return inst.class }

// Get resolves a property: fields take precedence over methods, and a
// method hit produces a bound method pairing the instance with the
// function. Returns false if the name is neither.
func (inst *Instance) Get(name string) (types.Value, bool) {
	if v, ok := inst.fields[name]; ok {
		return v, true
	}
	if m := inst.class.FindMethod(name); m != nil {
		return types.Obj(m.bind(inst)), true
	}
	return types.Nil(), false
}

// Set writes a field directly into the instance's field table.
func (inst *Instance) Set(name string, value types.Value) {
	inst.fields[name] = value
}

func (inst *Instance) TypeName() string { return "instance" }

func (inst *Instance) String() string { return inst.class.Name + " instance" }
