package nba

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fortuna/courtside/internal/directory"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/telemetry"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

const (
	BaseURL           = "https://stats.nba.com/stats"
	LeagueID          = "00"
	SeasonTypeRegular = "Regular Season"

	// UserAgent is sent because stats.nba.com drops requests without a browser fingerprint
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// ErrStatus is wrapped into errors for non-200 responses
var ErrStatus = errors.New("nba stats: unexpected status")

// Client talks to the stats.nba.com JSON endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	sf         singleflight.Group
	log        *logrus.Entry
}

// Options tune the client; zero values select defaults
type Options struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
	HTTPClient     *http.Client
}

// NewClient creates a stats.nba.com client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.RequestsPerSec <= 0 {
		opts.RequestsPerSec = 2
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(opts.RequestsPerSec), 1),
		log:        telemetry.Component("nba-client"),
	}
}

// Players lists every player in the league history. Concurrent callers
// share one in-flight download; nothing is retained once it completes.
func (c *Client) Players(ctx context.Context) ([]directory.PlayerIdentity, error) {
	v, err, _ := c.sf.Do("commonallplayers", func() (interface{}, error) {
		return c.fetchPlayers(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]directory.PlayerIdentity), nil
}

func (c *Client) fetchPlayers(ctx context.Context) ([]directory.PlayerIdentity, error) {
	params := url.Values{}
	params.Set("LeagueID", LeagueID)
	params.Set("IsOnlyCurrentSeason", "0")
	params.Set("Season", "2024-25")

	var resp statsResponse
	if err := c.get(ctx, "commonallplayers", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching player directory: %w", err)
	}
	set, err := resp.resultSet("CommonAllPlayers")
	if err != nil {
		return nil, err
	}

	players := make([]directory.PlayerIdentity, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		id, ok := set.intAt(row, "PERSON_ID")
		if !ok {
			continue
		}
		name := set.stringAt(row, "DISPLAY_FIRST_LAST")
		if name == "" {
			continue
		}
		players = append(players, directory.PlayerIdentity{Name: name, ID: id})
	}
	return players, nil
}

// Teams returns the static franchise table
func (c *Client) Teams(ctx context.Context) ([]directory.TeamIdentity, error) {
	out := make([]directory.TeamIdentity, len(Teams))
	copy(out, Teams)
	return out, nil
}

// PlayerGameLog returns one season of regular-season games, newest first
func (c *Client) PlayerGameLog(ctx context.Context, playerID int, season string) ([]gamelog.RawGame, error) {
	params := url.Values{}
	params.Set("PlayerID", fmt.Sprint(playerID))
	params.Set("Season", season)
	params.Set("SeasonType", SeasonTypeRegular)
	params.Set("LeagueID", LeagueID)

	var resp statsResponse
	if err := c.get(ctx, "playergamelog", params, &resp); err != nil {
		return nil, fmt.Errorf("fetching player game log: %w", err)
	}
	set, err := resp.resultSet("PlayerGameLog")
	if err != nil {
		return nil, err
	}

	games := make([]gamelog.RawGame, 0, len(set.RowSet))
	for _, row := range set.RowSet {
		pts, _ := set.intAt(row, "PTS")
		reb, _ := set.intAt(row, "REB")
		ast, _ := set.intAt(row, "AST")
		games = append(games, gamelog.RawGame{
			GameID:   set.stringAt(row, "Game_ID"),
			GameDate: set.stringAt(row, "GAME_DATE"),
			Matchup:  set.stringAt(row, "MATCHUP"),
			Result:   set.stringAt(row, "WL"),
			Minutes:  set.stringAt(row, "MIN"),
			Points:   pts,
			Rebounds: reb,
			Assists:  ast,
		})
	}
	return games, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://www.nba.com/")
	req.Header.Set("Origin", "https://www.nba.com")
	req.Header.Set("User-Agent", UserAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	c.log.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"status":   resp.StatusCode,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	}).Debug("stats request")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
