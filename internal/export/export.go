// Package export serializes a generated dungeon to JSON for download or
// API responses.
package export

import (
	"encoding/json"
	"io"

	"github.com/halftheopposite/dungeon/internal/generate"
)

type RectDTO struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type RoomDTO struct {
	RectDTO
	Hole string `json:"hole,omitempty"`
}

type CorridorDTO struct {
	RectDTO
	Orientation string `json:"orientation"`
	Traps       string `json:"traps,omitempty"`
}

type MonsterDTO struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// DungeonDTO is the wire shape of a generated dungeon. Grids are row-major,
// y-major then x-minor, matching the in-memory layout.
type DungeonDTO struct {
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Rooms     []RoomDTO     `json:"rooms"`
	Corridors []CorridorDTO `json:"corridors"`
	Monsters  []MonsterDTO  `json:"monsters"`
	Tiles     [][]int       `json:"tiles"`
	Props     [][]int       `json:"props"`
}

// Snapshot flattens a dungeon into its wire shape.
func Snapshot(d *generate.Dungeon) DungeonDTO {
	dto := DungeonDTO{
		Width:  d.Width,
		Height: d.Height,
		Tiles:  d.Tiles.Cells,
		Props:  d.Props.Cells,
	}

	for _, leaf := range d.Tree.Leaves() {
		if leaf.Room == nil {
			continue
		}
		room := RoomDTO{RectDTO: rectDTO(leaf.Room.X, leaf.Room.Y, leaf.Room.Width, leaf.Room.Height)}
		if leaf.Room.Hole != nil {
			room.Hole = leaf.Room.Hole.Name
		}
		dto.Rooms = append(dto.Rooms, room)
	}

	d.Tree.Walk(func(c *generate.Container) {
		if c.Corridor == nil {
			return
		}
		cor := CorridorDTO{
			RectDTO:     rectDTO(c.Corridor.X, c.Corridor.Y, c.Corridor.Width, c.Corridor.Height),
			Orientation: c.Corridor.Orientation.String(),
		}
		if c.Corridor.Traps != nil {
			cor.Traps = c.Corridor.Traps.Name
		}
		dto.Corridors = append(dto.Corridors, cor)
	})

	for _, m := range d.Monsters {
		dto.Monsters = append(dto.Monsters, MonsterDTO{
			Kind:   m.Kind.String(),
			X:      m.X,
			Y:      m.Y,
			Radius: m.Radius,
		})
	}
	return dto
}

// Write encodes the dungeon as indented JSON.
func Write(w io.Writer, d *generate.Dungeon) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Snapshot(d))
}

func rectDTO(x, y, w, h int) RectDTO {
	return RectDTO{X: x, Y: y, Width: w, Height: h}
}
