package server

import (
	"encoding/json"
	"time"

	"github.com/lox/rangecount/analysis"
	"github.com/lox/rangecount/classification"
	"github.com/lox/rangecount/poker"
)

// Message represents the base WebSocket message structure
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	RequestID string          `json:"requestId,omitempty"`
}

// NewMessage creates a new message stamped with the given time
func NewMessage(messageType MessageType, data any, at time.Time) (*Message, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Message{
		Type:      messageType,
		Data:      dataBytes,
		Timestamp: at,
	}, nil
}

// Client → Server Messages

// EvaluateData asks for the combo breakdown of a range. Suits defaults to
// the server's configured filter when omitted.
type EvaluateData struct {
	Range string   `json:"range"`
	Hero  []string `json:"hero,omitempty"`
	Board []string `json:"board,omitempty"`
	Suits *string  `json:"suits,omitempty"`
}

type ParseData struct {
	Range string `json:"range"`
}

type ClassifyData struct {
	Hole  []string `json:"hole"`
	Board []string `json:"board"`
}

// Server → Client Messages

type ErrorData struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorData) Error() string {
	return e.Code + ": " + e.Message
}

type CountData struct {
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

type TextureData struct {
	Grade     string `json:"grade"`
	Suits     string `json:"suits"`
	Connected int    `json:"connected"`
	Paired    bool   `json:"paired"`
}

// ResultData is the wire form of analysis.Result. Categories and draws are
// keyed by their snake_case names and omitted before the flop.
type ResultData struct {
	Total      int                  `json:"total"`
	Postflop   bool                 `json:"postflop"`
	Categories map[string]CountData `json:"categories,omitempty"`
	Draws      map[string]CountData `json:"draws,omitempty"`
	PerLabel   map[string]int       `json:"perLabel"`
	Texture    *TextureData         `json:"texture,omitempty"`
	// Skipped lists range tokens that matched nothing.
	Skipped []string `json:"skipped,omitempty"`
	// Ignored lists cards dropped as duplicates or beyond capacity.
	Ignored []string `json:"ignored,omitempty"`
}

type ParsedData struct {
	Labels  []string `json:"labels"`
	Combos  int      `json:"combos"`
	Skipped []string `json:"skipped,omitempty"`
}

type ClassifiedData struct {
	Category string       `json:"category"`
	Draws    []string     `json:"draws"`
	Texture  *TextureData `json:"texture,omitempty"`
}

// Helper functions to convert between analysis types and message types

// ResultDataFrom converts an aggregation result for the wire.
func ResultDataFrom(res analysis.Result, board []poker.Card) ResultData {
	data := ResultData{
		Total:    res.Total,
		Postflop: res.Postflop,
		PerLabel: make(map[string]int, len(res.PerLabel)),
	}
	for l, n := range res.PerLabel {
		data.PerLabel[l.String()] = n
	}
	if !res.Postflop {
		return data
	}

	data.Categories = make(map[string]CountData, poker.NumCategories)
	for _, c := range poker.Categories {
		data.Categories[c.Key()] = CountData{Count: res.Categories[c], Percent: res.CategoryPercent(c)}
	}
	data.Draws = make(map[string]CountData, classification.NumDrawKinds)
	for _, k := range classification.DrawKinds {
		data.Draws[k.Key()] = CountData{Count: res.Draws[k], Percent: res.DrawPercent(k)}
	}
	data.Texture = TextureDataFrom(classification.DescribeBoard(poker.NewHand(board...)))
	return data
}

func TextureDataFrom(s classification.BoardSummary) *TextureData {
	return &TextureData{
		Grade:     s.Texture.String(),
		Suits:     s.Suits.String(),
		Connected: s.Connected,
		Paired:    s.Paired,
	}
}

func cardStrings(cards []poker.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
