package factory

import (
	"image/color"
	"log"

	"github.com/automoto/shatterbox/archetypes"
	"github.com/automoto/shatterbox/components"
	cfg "github.com/automoto/shatterbox/config"
	"github.com/automoto/shatterbox/leveldata"
	"github.com/automoto/shatterbox/tags"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem spawns one placeable item from its room definition. Fragile
// definitions get a breakage component on top of the base item; thresholds
// left at zero in the room file fall back to the configured defaults.
func CreateItem(ecs *ecs.ECS, def leveldata.Item) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	w, h := def.W, def.H
	if w <= 0 || h <= 0 {
		w, h = cfg.Item.Size, cfg.Item.Size
	}
	mass := def.Mass
	if mass <= 0 {
		mass = cfg.Item.Mass
	}

	body := cp.NewBody(mass, cp.MomentForBox(mass, w, h))
	body.SetPosition(cp.Vector{X: def.X + w/2, Y: def.Y + h/2})

	shape := cp.NewBox(body, w, h, 0)
	shape.SetElasticity(cfg.Item.Elasticity)
	shape.SetFriction(cfg.Item.Friction)
	shape.SetCollisionType(tags.CollisionItem)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, tags.CategoryItem, cp.ALL_CATEGORIES))
	shape.UserData = item

	unlock, ok := cfg.ParseUnlockKind(def.Trigger)
	if def.Trigger != "" && !ok {
		log.Printf("Warning: item %q has unknown trigger %q, treating as plain", def.Name, def.Trigger)
	}

	components.Body.SetValue(item, components.BodyData{
		Body:  body,
		Shape: shape,
		W:     w,
		H:     h,
		Mass:  mass,
	})
	components.Item.SetValue(item, components.ItemData{
		Name:   def.Name,
		Unlock: unlock,
	})
	components.Sprite.SetValue(item, components.SpriteData{
		Kind:    components.SpriteBox,
		W:       w,
		H:       h,
		Fill:    itemFill(def, unlock),
		Scale:   1,
		Visible: true,
	})

	if def.Fragile {
		item.AddComponent(components.Fragile)
		components.Fragile.SetValue(item, components.FragileData{
			ImpactThreshold: orDefault(def.ImpactThreshold, cfg.Fragility.ImpactThreshold),
			CrushThreshold:  orDefault(def.CrushThreshold, cfg.Fragility.CrushThreshold),
			ForceWindow:     orDefault(def.ForceWindow, cfg.Fragility.ForceWindow),
			Strength:        orDefaultInt(def.Strength, cfg.Fragility.Strength),
		})
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry).Space
		space.AddBody(body)
		space.AddShape(shape)
	}

	return item
}

func itemFill(def leveldata.Item, unlock cfg.UnlockKind) color.RGBA {
	if def.Fragile {
		return cfg.GlassFill
	}
	switch unlock {
	case cfg.UnlockBrassKey:
		return cfg.BrassFill
	case cfg.UnlockSilverKey:
		return cfg.SilverFill
	case cfg.UnlockCrowbar:
		return cfg.SteelFill
	}
	return cfg.CrateFill
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}

func orDefaultInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
