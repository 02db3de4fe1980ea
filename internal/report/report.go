// Package report renders the optional HTML dashboard. html/template
// escapes every string field before it reaches markup.
package report

import (
	"html/template"
	"io"
	"strings"

	"github.com/karnatisrinivas/devops-hunter/internal/domain"
)

// sectionCap bounds cards per section; the JSON artifacts stay complete.
const sectionCap = 40

type view struct {
	GeneratedAt string
	Repos       []domain.Repo
	RepoCount   int
	Blogs       []domain.BlogPost
	BlogCount   int
	Jobs        []domain.Posting
	JobCount    int
}

var funcs = template.FuncMap{
	"join": strings.Join,
	"clip": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		for n > 0 && s[n]&0xc0 == 0x80 {
			n--
		}
		return s[:n]
	},
}

var tmpl = template.Must(template.New("report").Funcs(funcs).Parse(reportHTML))

// Render writes the dashboard for one combined result set.
func Render(w io.Writer, data domain.Combined) error {
	v := view{
		GeneratedAt: data.GeneratedAt,
		Repos:       cap40(data.Repos),
		RepoCount:   len(data.Repos),
		Blogs:       cap40(data.BlogPosts),
		BlogCount:   len(data.BlogPosts),
		Jobs:        cap40(data.Jobs),
		JobCount:    len(data.Jobs),
	}
	return tmpl.Execute(w, v)
}

func cap40[T any](in []T) []T {
	if len(in) > sectionCap {
		return in[:sectionCap]
	}
	return in
}

const reportHTML = `<!doctype html><html lang="en"><head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">
<title>DevOps Report</title>
<style>
:root{--bg:#0b1220;--card:#121a2b;--muted:#9fb0d0;--text:#eaf0ff;--accent:#7aa2ff;--chip:#1b2742}
*{box-sizing:border-box} body{margin:0;padding:24px;background:var(--bg);color:var(--text);font:14px/1.5 system-ui,-apple-system,Segoe UI,Roboto,Ubuntu}
h1{font-size:28px;margin:0 0 16px} h2{font-size:20px;margin:24px 0 12px}
.container{max-width:1100px;margin:0 auto}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(300px,1fr));gap:16px}
.card{background:var(--card);border-radius:14px;padding:16px;box-shadow:0 3px 10px rgba(0,0,0,.25)}
a{color:var(--accent);text-decoration:none} a:hover{text-decoration:underline}
.meta{color:var(--muted);font-size:12px;margin-top:6px}
.kv{display:flex;gap:8px;flex-wrap:wrap;margin-top:8px}
.chip{background:var(--chip);border-radius:999px;padding:2px 8px;font-size:12px;color:var(--muted)}
.header{display:flex;justify-content:space-between;align-items:center;gap:10px;margin-bottom:16px}
.badge{background:#1f2a48;color:#bcd3ff;border:1px solid #2a3a69;border-radius:999px;padding:4px 10px;font-size:12px}
.small{font-size:12px;color:var(--muted)}
hr{border:none;border-top:1px solid #263252;margin:20px 0}
.footer{margin-top:26px;color:var(--muted);font-size:12px}
</style></head><body><div class="container">
<h1>DevOps Report</h1><div class="small">Generated at {{.GeneratedAt}}</div><hr>
{{if .Repos}}
<div class="header"><h2>Top GitHub Repos (DevOps/SRE/Platform)</h2><span class="badge">{{.RepoCount}}</span></div>
<div class="grid">
{{range .Repos}}<div class="card">
  <div><a href="{{.URL}}" target="_blank"><strong>{{.Name}}</strong></a></div>
  <div class="meta">&#9733; {{.Stars}} &bull; {{.Language}}</div>
  <div class="small">{{clip .Description 180}}</div>
  <div class="kv">{{range .Topics}}<span class="chip">{{.}}</span>{{end}}</div>
</div>{{end}}
</div>
{{end}}
{{if .Blogs}}
<div class="header"><h2>Recent Blog Posts</h2><span class="badge">{{.BlogCount}}</span></div>
<div class="grid">
{{range .Blogs}}<div class="card">
  <div><a href="{{.URL}}" target="_blank"><strong>{{.Title}}</strong></a></div>
  <div class="meta">{{.Source}} &bull; {{.Published}}</div>
  <div class="small">{{clip .Excerpt 200}}</div>
</div>{{end}}
</div>
{{end}}
{{if .Jobs}}
<div class="header"><h2>Job Listings</h2><span class="badge">{{.JobCount}}</span></div>
<div class="grid">
{{range .Jobs}}<div class="card">
  <div><a href="{{.URL}}" target="_blank"><strong>{{.Title}}</strong></a></div>
  <div class="meta">{{.Company}} &bull; {{join .Locations ", "}}</div>
  <div class="small">Source: {{.Source}} &bull; {{.Date}}</div>
</div>{{end}}
</div>
{{end}}
<div class="footer">Made with devops-hunter</div></div></body></html>
`
