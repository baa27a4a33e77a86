package engine

import (
	"github.com/lixenwraith/rollaball/component"
)

// ComponentStore provides cached pointers to the typed component stores
type ComponentStore struct {
	Player    *Store[component.PlayerComponent]
	Body      *Store[component.BodyComponent]
	Collider  *Store[component.ColliderComponent]
	Transform *Store[component.TransformComponent]
	Wall      *Store[component.WallComponent]
	Marker    *Store[component.MarkerComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Player:    NewStore[component.PlayerComponent](),
		Body:      NewStore[component.BodyComponent](),
		Collider:  NewStore[component.ColliderComponent](),
		Transform: NewStore[component.TransformComponent](),
		Wall:      NewStore[component.WallComponent](),
		Marker:    NewStore[component.MarkerComponent](),
	}
}
