package scene

// Registry maps scene kinds to their behaviour
// Ending variants share one behaviour parameterised by Params.Ending
type Registry struct {
	scenes map[Kind]Scene
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{scenes: make(map[Kind]Scene)}
}

// NewDefaultRegistry registers the title, game and ending scenes over env
func NewDefaultRegistry(env *Env) *Registry {
	r := NewRegistry()
	r.Register(KindTitle, NewTitle(env))
	r.Register(KindGame, NewGame(env))
	r.Register(KindEnding, NewEnding(env))
	return r
}

// Register binds a behaviour to kind, replacing any previous one
func (r *Registry) Register(kind Kind, s Scene) {
	r.scenes[kind] = s
}

// Lookup returns the behaviour for tag
func (r *Registry) Lookup(tag Tag) (Scene, bool) {
	s, ok := r.scenes[tag.Kind]
	return s, ok
}
