package tags

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

var (
	Item   = donburi.NewTag().SetName("Item")
	Chest  = donburi.NewTag().SetName("Chest")
	Shard  = donburi.NewTag().SetName("Shard")
	Wall   = donburi.NewTag().SetName("Wall")
	Camera = donburi.NewTag().SetName("Camera")
)

// Chipmunk collision types for contact handlers
const (
	CollisionNone cp.CollisionType = iota
	CollisionItem
	CollisionChest
	CollisionShard
	CollisionWall
)

// Chipmunk shape filter categories
const (
	CategoryItem uint = 1 << iota
	CategoryChest
	CategoryShard
	CategoryWall
)
