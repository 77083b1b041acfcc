package web

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/kvkontin/led-hearth/internal/status"
)

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"uptime": func(d time.Duration) string {
		d = d.Truncate(time.Second)
		days := int(d.Hours()) / 24
		h := int(d.Hours()) % 24
		m := int(d.Minutes()) % 60
		s := int(d.Seconds()) % 60
		if days > 0 {
			return fmt.Sprintf("%dd %dh %dm %ds", days, h, m, s)
		}
		if h > 0 {
			return fmt.Sprintf("%dh %dm %ds", h, m, s)
		}
		if m > 0 {
			return fmt.Sprintf("%dm %ds", m, s)
		}
		return fmt.Sprintf("%ds", s)
	},
	"pct": func(f float64) string {
		return fmt.Sprintf("%.1f%%", f*100)
	},
}).Parse(indexHTML))

const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta http-equiv="refresh" content="5">
<title>LED Hearth</title>
<style>
body { font-family: monospace; max-width: 600px; margin: 2em auto; padding: 0 1em; }
h1 { font-size: 1.4em; }
table { border-collapse: collapse; width: 100%; margin: 1em 0; }
td, th { text-align: left; padding: 4px 8px; border-bottom: 1px solid #ddd; }
th { width: 40%; }
.fire { color: #c50; font-weight: bold; }
.menu { color: #06c; font-weight: bold; }
.burnout { color: #888; font-weight: bold; }
.connected { color: green; }
.disconnected { color: red; }
.bar { background: #eee; border-radius: 4px; height: 14px; overflow: hidden; }
.bar > div { background: linear-gradient(90deg, #fa0, #c50); height: 100%; }
</style>
</head>
<body>
<h1>LED Hearth</h1>

<h2>Fire</h2>
<table>
<tr><th>Mode</th><td class="{{if .Burnout}}burnout{{else if eq (printf "%s" .Mode) "MENU"}}menu{{else}}fire{{end}}">{{if .Burnout}}BURNED OUT{{else}}{{.Mode}}{{end}}</td></tr>
<tr><th>Burned</th><td>{{pct .Progress}}<div class="bar"><div style="width: {{pct .Progress}}"></div></div></td></tr>
<tr><th>Vigor</th><td>{{pct .Vigor}}</td></tr>
<tr><th>Ember</th><td>{{pct .Ember}}</td></tr>
</table>

<h2>Connectivity</h2>
<table>
<tr><th>MQTT</th><td class="{{if .MQTTConnected}}connected{{else}}disconnected{{end}}">{{if .MQTTConnected}}connected{{else}}disconnected{{end}}</td></tr>
<tr><th>Broker</th><td>{{.Config.Broker}}</td></tr>
{{if .Network}}<tr><th>Network</th><td>{{.Network.Status}} ({{.Network.Type}}{{if .Network.SSID}} / {{.Network.SSID}}{{end}})</td></tr>
<tr><th>IP</th><td>{{.Network.IP}}</td></tr>{{end}}
</table>

<h2>Event Counts</h2>
<table>
<tr><th>Short presses</th><td>{{.Counts.ShortPresses}}</td></tr>
<tr><th>Long holds</th><td>{{.Counts.LongHolds}}</td></tr>
<tr><th>Rewinds</th><td>{{.Counts.Rewinds}}</td></tr>
<tr><th>Menu timeouts</th><td>{{.Counts.MenuTimeouts}}</td></tr>
<tr><th>Burnouts</th><td>{{.Counts.Burnouts}}</td></tr>
</table>

<h2>System</h2>
<table>
<tr><th>Uptime</th><td>{{uptime .Uptime}}</td></tr>
<tr><th>Started</th><td>{{.StartTime.UTC.Format "2006-01-02T15:04:05Z"}}</td></tr>
<tr><th>Poll</th><td>{{.Config.PollMs}}ms ({{.Config.IdlePollMs}}ms idle)</td></tr>
<tr><th>Burn time</th><td>{{.Config.LifeHours}}h over {{.Config.FlameCount}} flame outputs</td></tr>
<tr><th>Heartbeat</th><td>{{if eq .Config.HeartbeatMs 0}}disabled{{else}}{{.Config.HeartbeatMs}}ms{{end}}</td></tr>
<tr><th>HTTP</th><td>{{.Config.HTTPAddr}}</td></tr>
</table>

<p><a href="/index.json">JSON</a></p>
</body>
</html>
`

func renderHTML(w io.Writer, snap status.Snapshot) {
	// Snapshot has Uptime() method but template needs a Duration field.
	data := struct {
		status.Snapshot
		Uptime time.Duration
	}{
		Snapshot: snap,
		Uptime:   snap.Uptime(),
	}
	indexTmpl.Execute(w, data)
}
