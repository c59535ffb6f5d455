package config

import "github.com/yohamta/donburi/ecs"

// Default is the single ECS layer used for entities and renderers.
const Default ecs.LayerID = iota
