package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/service"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dashboards runs dashboard requests
type Dashboards interface {
	Run(ctx context.Context, req service.Request) (*service.Dashboard, error)
}

// GameLogArgs are the filters shared by every tool
type GameLogArgs struct {
	Player        string   `json:"player" jsonschema:"Full player name, e.g. LeBron James (required)"`
	Seasons       []string `json:"seasons,omitempty" jsonschema:"Seasons like 2023-24 (default: preset seasons)"`
	From          string   `json:"from,omitempty" jsonschema:"Start date YYYY-MM-DD"`
	To            string   `json:"to,omitempty" jsonschema:"End date YYYY-MM-DD"`
	Location      string   `json:"location,omitempty" jsonschema:"All, Home or Away"`
	Opponent      string   `json:"opponent,omitempty" jsonschema:"Full opponent team name, e.g. Boston Celtics"`
	OpponentExact bool     `json:"opponent_exact,omitempty" jsonschema:"Match the parsed opponent instead of searching the matchup text"`
}

func (a GameLogArgs) request() service.Request {
	return service.Request{
		Player:        a.Player,
		Seasons:       a.Seasons,
		From:          a.From,
		To:            a.To,
		Location:      a.Location,
		Opponent:      a.Opponent,
		OpponentExact: a.OpponentExact,
		Surface:       "mcp",
	}
}

type PredictArgs struct {
	Player        string   `json:"player" jsonschema:"Full player name, e.g. LeBron James (required)"`
	Stat          string   `json:"stat,omitempty" jsonschema:"PTS, REB, AST or PRA (default PTS)"`
	Seasons       []string `json:"seasons,omitempty" jsonschema:"Seasons like 2023-24 (default: preset seasons)"`
	From          string   `json:"from,omitempty" jsonschema:"Start date YYYY-MM-DD"`
	To            string   `json:"to,omitempty" jsonschema:"End date YYYY-MM-DD"`
	Location      string   `json:"location,omitempty" jsonschema:"All, Home or Away"`
	Opponent      string   `json:"opponent,omitempty" jsonschema:"Full opponent team name, e.g. Boston Celtics"`
	OpponentExact bool     `json:"opponent_exact,omitempty" jsonschema:"Match the parsed opponent instead of searching the matchup text"`
}

func (a PredictArgs) request() service.Request {
	r := GameLogArgs{
		Player:        a.Player,
		Seasons:       a.Seasons,
		From:          a.From,
		To:            a.To,
		Location:      a.Location,
		Opponent:      a.Opponent,
		OpponentExact: a.OpponentExact,
	}.request()
	r.Stat = a.Stat
	return r
}

// PredictOutput is the predict_next_game result
type PredictOutput struct {
	Player    string   `json:"player"`
	Stat      string   `json:"stat"`
	Games     int      `json:"games"`
	Predicted *float64 `json:"predicted,omitempty"`
	Slope     float64  `json:"slope,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}

// GameLogOutput is the player_game_log result
type GameLogOutput struct {
	Player   string          `json:"player"`
	Games    gamelog.GameLog `json:"games"`
	Summary  gamelog.Summary `json:"summary"`
	Warnings []string        `json:"warnings,omitempty"`
}

// NewServer registers the dashboard tools on a fresh MCP server
func NewServer(dash Dashboards, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "courtside", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "predict_next_game",
		Description: "Linear-trend projection of a player's next game for one stat over the filtered game log",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args PredictArgs) (*mcp.CallToolResult, any, error) {
		d, err := dash.Run(ctx, args.request())
		if err != nil {
			return toolError(err), nil, nil
		}
		p := d.Primary()
		out := PredictOutput{Player: p.Player.Name, Stat: string(d.Stat), Games: len(p.Games), Warnings: d.Warnings}
		if p.Prediction != nil {
			v := p.Prediction.Value
			out.Predicted = &v
			out.Slope = p.Prediction.Slope
		}
		return toolJSON(out), nil, nil
	})

	mcp.AddTool(server, &mcp.Tool{
		Name:        "player_game_log",
		Description: "A player's filtered game log with per-game PTS, REB, AST, PRA and season-filter averages",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args GameLogArgs) (*mcp.CallToolResult, any, error) {
		d, err := dash.Run(ctx, args.request())
		if err != nil {
			return toolError(err), nil, nil
		}
		p := d.Primary()
		return toolJSON(GameLogOutput{
			Player:   p.Player.Name,
			Games:    p.Games,
			Summary:  p.Summary,
			Warnings: d.Warnings,
		}), nil, nil
	})

	return server
}

// Handler serves server over streamable HTTP
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func toolJSON(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
