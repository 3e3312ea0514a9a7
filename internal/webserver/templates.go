package webserver

import "html/template"

// pageTemplates holds every server-rendered page. The widgets round-trip
// through the handlers; no client scripts.
var pageTemplates = template.Must(template.New("pages").Parse(`
{{define "head"}}<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{.}}</title>
</head>
<body>{{end}}

{{define "foot"}}</body>
</html>{{end}}

{{define "venueTable"}}
<table id="venueTable">
  <tr>
    <th>Name</th><th>Address</th><th>Playground</th><th>Fenced</th>
    <th>Quiet zones</th><th>Quiet</th><th>Crowdedness</th>
  </tr>
  {{range .}}
  <tr>
    <td><a href="/venue/{{.ID}}">{{.Name}}</a></td>
    <td>{{.Address}}</td>
    <td>{{.Playground}}</td>
    <td>{{.Fenced}}</td>
    <td>{{.QuietZones}}</td>
    <td>{{.Quiet}}</td>
    <td>{{.Crowdedness}}</td>
  </tr>
  {{end}}
</table>
{{end}}

{{define "index"}}{{template "head" "quietspot"}}
<h1>quietspot</h1>
<p>Find venues that match your sensory preferences.</p>
<p>
  <a href="/quiz">Take the noise quiz</a> |
  <a href="/signup">Sign up</a> |
  <a href="/login">Log in</a>
</p>
<form action="/search-venues" method="get">
  <input type="text" id="venueFilter" name="query" placeholder="Filter venues..." value="{{.Query}}" />
  <button type="submit">Search</button>
</form>
{{template "venueTable" .Venues}}
{{template "foot"}}{{end}}

{{define "results"}}{{template "head" "Venues"}}
<h1>Venues</h1>
<p><a href="/">Back</a></p>
{{if .Query}}<p>Results for &quot;{{.Query}}&quot;</p>{{end}}
{{if .Venues}}{{template "venueTable" .Venues}}{{else}}<p>No venues matched.</p>{{end}}
{{template "foot"}}{{end}}

{{define "venue"}}{{template "head" .Name}}
<h1>{{.Name}}</h1>
<p>{{.Address}}</p>
<ul>
  <li>Playground: {{.Playground}}</li>
  <li>Fenced: {{.Fenced}}</li>
  <li>Quiet zones: {{.QuietZones}}</li>
  <li>Colors: {{.Colors}}</li>
  <li>Smells: {{.Smells}}</li>
  <li>Own food allowed: {{.FoodOwn}}</li>
  <li>Defined duration: {{.DefinedDuration}}</li>
  <li>Quiet: {{.Quiet}}</li>
  <li>Crowdedness: {{.Crowdedness}}</li>
  <li>Food variety: {{.FoodVariety}}</li>
</ul>
{{if .PhotoURL}}<img src="{{.PhotoURL}}" alt="{{.Name}}" />{{end}}
<p><a href="/">Back</a></p>
{{template "foot"}}{{end}}

{{define "signup"}}{{template "head" "Sign up"}}
<h1>Sign up</h1>
<form action="/signup" method="get">
  <input type="password" id="passwordInput" name="password" placeholder="Try a password" value="{{.Password}}" />
  <button type="submit">Check strength</button>
</form>
<ul id="checklist">
  {{range .Checklist}}
  <li class="{{if .Satisfied}}valid{{else}}invalid{{end}}">{{if .Satisfied}}&#10003;{{else}}&#10007;{{end}} {{.Rule.Label}}</li>
  {{end}}
</ul>
<form action="/register" method="post">
  <input type="text" name="nickname" placeholder="Nickname" required />
  <input type="password" name="password" placeholder="Password" required />
  <button type="submit">Register</button>
</form>
<p><a href="/login">Already registered? Log in</a></p>
{{template "foot"}}{{end}}

{{define "login"}}{{template "head" "Log in"}}
<h1>Log in</h1>
<form action="/login" method="post">
  <input type="text" name="nickname" placeholder="Nickname" required />
  <input type="password" name="password" placeholder="Password" required />
  <button type="submit">Log in</button>
</form>
<p><a href="/signup">Need an account? Sign up</a></p>
{{template "foot"}}{{end}}

{{define "dashboard"}}{{template "head" "Welcome"}}
<h1>Welcome, {{.Nickname}}</h1>
<h2>Add a review</h2>
<form action="/reviews" method="post">
  <input type="hidden" name="nickname" value="{{.Nickname}}" />
  <select name="venue_id">
    {{range .Venues}}<option value="{{.ID}}">{{.Name}}</option>{{end}}
  </select>
  <textarea name="review_text" placeholder="Your review" required></textarea>
  <button type="submit">Submit review</button>
</form>
<h2>Latest reviews</h2>
{{if .Reviews}}
<ul>
  {{range .Reviews}}
  <li><strong>{{.VenueName}}</strong> &mdash; {{.Text}} <em>by {{.Nickname}}</em></li>
  {{end}}
</ul>
{{else}}<p>No reviews yet.</p>{{end}}
{{template "foot"}}{{end}}

{{define "question"}}{{template "head" "Quiz"}}
<h1>Noise quiz</h1>
<p>Question {{.Number}} of {{.Total}}</p>
<h2 id="question">{{.Prompt}}</h2>
<form action="/quiz/answer" method="post">
  <ul>
    {{range .Options}}
    <li>
      <label><input type="radio" name="answer" value="{{.}}" /> {{.}}</label>
    </li>
    {{end}}
  </ul>
  <button type="submit" id="submit">Submit</button>
</form>
{{template "foot"}}{{end}}

{{define "summary"}}{{template "head" "Quiz result"}}
<h1 id="question">{{.Summary}}</h1>
<form action="/quiz/reset" method="post">
  <button type="submit">Restart</button>
</form>
<p><a href="/">Back</a></p>
{{template "foot"}}{{end}}
`))
