package handlers

import (
	"net/url"

	"github.com/gorilla/schema"

	"github.com/pzhuk/minefield/internal/mines"
	"github.com/pzhuk/minefield/internal/session"
)

type NewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseNewGameDTO(src url.Values) (NewGameDTO, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var dto NewGameDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

type Position struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src url.Values) (Position, error) {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	var pos Position
	err := dec.Decode(&pos, src)
	return pos, err
}

// Player-visible cell codes. Uncovered numbered cells are their count,
// everything else gets a sentinel. The engine's content of covered
// cells is never serialized.
const (
	CodeHidden int8 = -2
	CodeFlag   int8 = -1
	CodeMine   int8 = 64
)

func cellCode(c mines.Cell) int8 {
	switch c.Visibility {
	case mines.Flagged:
		return CodeFlag
	case mines.Uncovered:
		if c.Content.IsMine() {
			return CodeMine
		}
		return int8(c.Content)
	default:
		return CodeHidden
	}
}

type GameSessionDTO struct {
	SessionID string         `json:"session_id"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	MineCount int            `json:"mine_count"`
	Status    session.Status `json:"status"`
	FlagCount int            `json:"flag_count"`
	Grid      []int8         `json:"grid,omitempty"`
	CreatedAt int64          `json:"created_at"`
	EndedAt   *int64         `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(v session.View) *GameSessionDTO {
	dto := &GameSessionDTO{
		SessionID: v.ID,
		Width:     v.Params.Width,
		Height:    v.Params.Height,
		MineCount: v.Params.MineCount,
		Status:    v.Status,
		FlagCount: v.FlagCount,
		CreatedAt: v.CreatedAt.UnixMilli(),
	}
	if !v.EndedAt.IsZero() {
		e := v.EndedAt.UnixMilli()
		dto.EndedAt = &e
	}
	if v.Cells != nil {
		dto.Grid = make([]int8, len(v.Cells))
		for i, c := range v.Cells {
			dto.Grid[i] = cellCode(c)
		}
	}
	return dto
}
