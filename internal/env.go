package internal

// binding pairs the type the checker proved with the value the
// evaluator produced. The two always enter the environment together.
type binding struct {
	vtype ltype
	val   value
}

type env struct {
	enclosing *env
	values    map[string]binding
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]binding),
	}
}

// get walks the chain innermost first, first hit wins.
func (e *env) get(name string) (binding, bool) {
	if b, ok := e.values[name]; ok {
		return b, true
	}
	if e.enclosing != nil {
		return e.enclosing.get(name)
	}
	return binding{}, false
}

// define binds in this scope, shadowing any outer binding. The map
// assignment replaces both halves in one step.
func (e *env) define(name string, b binding) {
	e.values[name] = b
}

// bind overwrites the pair in the scope where name is already bound,
// or creates it in this scope if absent anywhere.
func (e *env) bind(name string, b binding) {
	if scope := e.resolve(name); scope != nil {
		scope.values[name] = b
		return
	}
	e.values[name] = b
}

func (e *env) resolve(name string) *env {
	if _, ok := e.values[name]; ok {
		return e
	}
	if e.enclosing != nil {
		return e.enclosing.resolve(name)
	}
	return nil
}
