package tile

// Property is a single TMX property, kept exactly as written in the map.
type Property struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Object is something placed on the map by a level designer
// (spawn points, triggers, doors ..). It is never modified after loading.
type Object struct {
	ID         int
	Name       string
	Type       string
	Bounds     Frame
	Properties []Property
}

// Props returns a typed view over the object's properties
func (o *Object) Props() *Properties {
	return newPropertiesFromList(o.Properties)
}

// Registry answers questions about the objects in a map.
// Lookups preserve map order.
type Registry struct {
	objects []Object
}

// NewRegistry wraps the given objects. The slice must not be modified afterwards.
func NewRegistry(objects []Object) *Registry {
	if objects == nil {
		objects = []Object{}
	}
	return &Registry{objects: objects}
}

// Find returns the first object with the given name, or nil.
func (r *Registry) Find(name string) *Object {
	for i := range r.objects {
		if r.objects[i].Name == name {
			return &r.objects[i]
		}
	}
	return nil
}

// ByName returns all objects with the given name
func (r *Registry) ByName(name string) []Object {
	return r.filter(func(o *Object) bool { return o.Name == name })
}

// ByType returns all objects of the given type
func (r *Registry) ByType(kind string) []Object {
	return r.filter(func(o *Object) bool { return o.Type == kind })
}

// All returns every object. Callers must treat it as read only.
func (r *Registry) All() []Object {
	return r.objects
}

// Len returns how many objects we hold
func (r *Registry) Len() int {
	return len(r.objects)
}

func (r *Registry) filter(match func(*Object) bool) []Object {
	found := []Object{}
	for i := range r.objects {
		if match(&r.objects[i]) {
			found = append(found, r.objects[i])
		}
	}
	return found
}
