package rest

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/fortuna/courtside/internal/chart"
	"github.com/fortuna/courtside/internal/gamelog"
	"github.com/fortuna/courtside/internal/service"
)

var pageTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"mean": func(m gamelog.Mean) string {
		if !m.Valid {
			return "-"
		}
		return fmt.Sprintf("%.1f", m.Value)
	},
	"day": func(t time.Time) string { return t.Format("2006-01-02") },
}).Parse(dashboardHTML))

type playerView struct {
	Report service.PlayerReport
	Charts []template.HTML
}

type pageData struct {
	Seasons    []string
	Selected   map[string]bool
	Request    service.Request
	Stats      []gamelog.Stat
	Dashboard  *service.Dashboard
	Players    []playerView
	Comparison []template.HTML
	Error      string
}

// DashboardPage renders the interactive HTML dashboard. With no player in
// the query string the presets fill the form.
func (h *Handler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	presets := h.dashboards.Presets()
	req := parseRequest(r)
	if req.Player == "" {
		req.Player = presets.DefaultPlayer
		if req.From == "" {
			req.From = presets.DefaultStart
		}
		if req.To == "" {
			req.To = time.Now().Format("2006-01-02")
		}
	}
	if len(req.Seasons) == 0 {
		req.Seasons = presets.SelectedSeasons()
	}

	data := pageData{
		Seasons:  presets.Seasons,
		Selected: make(map[string]bool),
		Request:  req,
		Stats:    []gamelog.Stat{gamelog.StatPoints, gamelog.StatRebounds, gamelog.StatAssists, gamelog.StatPRA},
	}
	for _, s := range req.Seasons {
		data.Selected[s] = true
	}

	status := http.StatusOK
	dash, err := h.dashboards.Run(r.Context(), req)
	if err != nil {
		status = http.StatusBadGateway
		if errors.Is(err, service.ErrInvalidRequest) {
			status = http.StatusBadRequest
		}
		data.Error = err.Error()
	} else {
		data.Dashboard = dash
		for _, rep := range dash.Players {
			view := playerView{Report: rep}
			for _, p := range rep.Panels {
				view.Charts = append(view.Charts, inlineSVG(p))
			}
			data.Players = append(data.Players, view)
		}
		for _, p := range dash.Comparison {
			data.Comparison = append(data.Comparison, inlineSVG(p))
		}
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to render page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// inlineSVG renders p for embedding in the page. The svgo output is
// generated from escaped labels, so it is trusted as HTML.
func inlineSVG(p chart.Panel) template.HTML {
	var buf bytes.Buffer
	if err := chart.RenderSVG(&buf, p); err != nil {
		return template.HTML(template.HTMLEscapeString(err.Error()))
	}
	// drop the XML prolog so the fragment can sit inside <body>
	out := buf.Bytes()
	if i := bytes.Index(out, []byte("<svg")); i > 0 {
		out = out[i:]
	}
	return template.HTML(out)
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Player Stats Dashboard</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 24px; color: #222; }
form fieldset { display: inline-block; vertical-align: top; border: 1px solid #ddd; margin: 4px; }
table { border-collapse: collapse; margin: 12px 0; }
th, td { border: 1px solid #ddd; padding: 4px 8px; text-align: right; }
th { background: #f4f4f4; }
.warning { color: #b71c1c; font-weight: bold; }
.prediction { font-size: 1.2em; }
.chart { margin: 12px 0; }
</style>
</head>
<body>
<h1>Player Stats Dashboard</h1>

<form id="filters" method="get" action="/">
  <fieldset>
    <legend>Players</legend>
    <label>Player <input type="text" name="player" value="{{.Request.Player}}"></label>
    <label>Compare with <input type="text" name="compare" value="{{.Request.ComparePlayer}}"></label>
  </fieldset>
  <fieldset>
    <legend>Seasons</legend>
    {{range .Seasons}}<label><input type="checkbox" name="season" value="{{.}}"{{if index $.Selected .}} checked{{end}}> {{.}}</label>
    {{end}}
  </fieldset>
  <fieldset>
    <legend>Dates</legend>
    <label>From <input type="date" name="from" value="{{.Request.From}}"></label>
    <label>To <input type="date" name="to" value="{{.Request.To}}"></label>
  </fieldset>
  <fieldset>
    <legend>Games</legend>
    <label>Location
      <select name="location">
        <option{{if eq .Request.Location "" "All"}} selected{{end}}>All</option>
        <option{{if eq .Request.Location "Home"}} selected{{end}}>Home</option>
        <option{{if eq .Request.Location "Away"}} selected{{end}}>Away</option>
      </select>
    </label>
    <label>Opponent <input type="text" name="opponent" value="{{.Request.Opponent}}" placeholder="Boston Celtics"></label>
    <label><input type="checkbox" name="exact" value="true"{{if .Request.OpponentExact}} checked{{end}}> exact opponent</label>
    <label>Predict
      <select name="stat">
        {{range .Stats}}<option value="{{.}}"{{if eq (print .) $.Request.Stat}} selected{{end}}>{{.Label}}</option>
        {{end}}
      </select>
    </label>
  </fieldset>
  <button type="submit">Update</button>
</form>

{{if .Error}}<p class="warning" id="error">{{.Error}}</p>{{end}}

{{with .Dashboard}}
  {{range .Warnings}}<p class="warning">{{.}}</p>
  {{end}}
{{end}}

{{range .Players}}{{if .Report.Found}}
<section class="player" data-player-id="{{.Report.Player.ID}}">
  <h2>{{.Report.Player.Name}}</h2>
  {{if .Report.Games}}
  <table class="summary">
    <tr><th>Games</th><th>PTS</th><th>REB</th><th>AST</th><th>PRA</th></tr>
    <tr>
      <td>{{.Report.Summary.Games}}</td>
      <td>{{mean .Report.Summary.Points}}</td>
      <td>{{mean .Report.Summary.Rebounds}}</td>
      <td>{{mean .Report.Summary.Assists}}</td>
      <td>{{mean .Report.Summary.PRA}}</td>
    </tr>
  </table>
  {{with .Report.Prediction}}
  <p class="prediction">Predicted {{.Stat}} next game: <strong>{{printf "%.1f" .Value}}</strong></p>
  {{end}}
  {{range .Charts}}<div class="chart">{{.}}</div>
  {{end}}
  <table class="games">
    <tr><th>Date</th><th>Matchup</th><th>Location</th><th>PTS</th><th>REB</th><th>AST</th><th>PRA</th></tr>
    {{range .Report.Games}}<tr>
      <td>{{day .GameDate}}</td><td>{{.Matchup}}</td><td>{{.Location}}</td>
      <td>{{.Points}}</td><td>{{.Rebounds}}</td><td>{{.Assists}}</td><td>{{.PRA}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p class="empty">Nothing to display.</p>
  <p class="prediction">Prediction unavailable.</p>
  {{end}}
</section>
{{end}}{{end}}

{{if .Comparison}}
<section id="comparison">
  <h2>Comparison</h2>
  {{range .Comparison}}<div class="chart">{{.}}</div>
  {{end}}
</section>
{{end}}
</body>
</html>
`
