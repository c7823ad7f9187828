package render

import "html/template"

// htmlFragment marks markup already produced by this template set, so the
// enclosing template does not re-escape it.
type htmlFragment = template.HTML

const templates = `
{{define "empty-state"}}<div class="empty-state"><p>{{.}}</p></div>{{end}}

{{define "context-badge"}}<span class="context-badge" style="background: {{.Color}}">{{.Icon}} {{.Name}}</span>{{end}}

{{define "task-table"}}
<table class="task-table">
  <thead>
    <tr>
      <th>Task</th><th>Context</th><th>Priority</th><th>Status</th>
      <th>Due</th><th>Energy</th><th>Estimate</th><th>Project</th><th></th>
    </tr>
  </thead>
  <tbody>
    {{range .}}
    <tr class="{{.RowClass}}">
      <td class="task-title">{{.Title}}</td>
      <td>{{template "context-badge" .Context}}</td>
      <td><span class="badge {{.PriorityClass}}">{{.Priority}}</span></td>
      <td><span class="badge {{.StatusClass}}">{{.Status}}</span></td>
      <td>{{.Due}}</td>
      <td class="energy">{{.Energy}}</td>
      <td>{{.Estimate}}</td>
      <td>{{.Project}}</td>
      <td class="row-actions">
        <a href="/tasks/{{.ID}}/edit">Edit</a>
        <a href="/tasks/{{.ID}}/confirm-delete">Delete</a>
      </td>
    </tr>
    {{end}}
  </tbody>
</table>
{{end}}

{{define "v2g-table"}}
<table class="v2g-table">
  <thead>
    <tr>
      <th>Requester</th><th>Request</th><th>Source</th><th>Gabriel?</th>
      <th>Priority</th><th>Status</th><th>Due</th><th>Updated</th><th></th>
    </tr>
  </thead>
  <tbody>
    {{range .}}
    <tr class="{{.RowClass}}">
      <td>{{.Requester}}</td>
      <td class="task-title">{{.Request}}</td>
      <td>{{.Source}}</td>
      <td>{{if .NeedsGabriel}}<span class="badge badge-gabriel">YES</span>{{else}}—{{end}}</td>
      <td><span class="badge {{.PriorityClass}}">{{.Priority}}</span></td>
      <td><span class="badge {{.StatusClass}}">{{.Status}}</span></td>
      <td>{{.Due}}</td>
      <td class="muted">{{.Updated}}</td>
      <td class="row-actions">
        <a href="/v2g/requests/{{.ID}}/edit">Edit</a>
        <a href="/v2g/requests/{{.ID}}/confirm-delete">Delete</a>
      </td>
    </tr>
    {{end}}
  </tbody>
</table>
{{end}}

{{define "stat-cards"}}
<div class="stat-cards">
  {{range .}}
  <div class="stat-card {{.Class}}"><div class="stat-value">{{.Value}}</div><div class="stat-label">{{.Label}}</div></div>
  {{end}}
</div>
{{end}}

{{define "dashboard"}}
{{template "stat-cards" .Cards}}
{{if .NextAction}}
<div class="next-action {{.NextAction.Class}}">
  <h3>⭐ Next Best Action</h3>
  <p class="task-title">{{.NextAction.Title}}</p>
  <p>{{template "context-badge" .NextAction.Context}} <span class="energy">{{.NextAction.Energy}}</span> · due {{.NextAction.Due}}</p>
</div>
{{end}}
<section class="preview">
  <h3>Open Tasks</h3>
  <div id="task-table">{{.Preview}}</div>
  <p><a href="/tasks/new" class="button">+ New Task</a></p>
</section>
{{if .Today.Rows}}
<section class="time-summary">
  <h3>Time Today</h3>
  {{template "analytics-bucket" .Today}}
</section>
{{end}}
{{end}}

{{define "tasks-tab"}}
<div class="filters">
  <select id="context-filter" name="context">
    <option value="all" {{if eq .ContextFilter "all"}}selected{{end}}>All contexts</option>
    {{$active := .ContextFilter}}
    {{range .Contexts}}
    <option value="{{.ID}}" {{if eq $active .ID}}selected{{end}}>{{.Icon}} {{.Name}}</option>
    {{end}}
  </select>
  <select id="view-filter" name="view">
    <option value="all" {{if eq .View "all"}}selected{{end}}>All open</option>
    <option value="urgent" {{if eq .View "urgent"}}selected{{end}}>Urgent</option>
  </select>
  <a href="/tasks/new" class="button">+ New Task</a>
</div>
<div id="task-table">{{.Table}}</div>
{{end}}

{{define "v2g-tab"}}
{{template "stat-cards" .Cards}}
<div class="filters">
  <select id="v2g-view-filter" name="view">
    <option value="all" {{if eq .View "all"}}selected{{end}}>All open</option>
    <option value="urgent" {{if eq .View "urgent"}}selected{{end}}>Urgent</option>
  </select>
  <a href="/v2g/requests/new" class="button">+ New Request</a>
</div>
<div id="v2g-table">{{.Table}}</div>
{{end}}

{{define "analytics-bucket"}}
<table class="analytics-table">
  <tbody>
    {{range .Rows}}
    <tr><td>{{template "context-badge" .Context}}</td><td class="hours">{{printf "%.1f" .Hours}}h</td></tr>
    {{end}}
    <tr class="analytics-total"><td>Total ({{.Logs}} logs)</td><td class="hours">{{printf "%.1f" .Total}}h</td></tr>
  </tbody>
</table>
{{end}}

{{define "analytics"}}
<div class="analytics">
  {{range .Buckets}}
  <section>
    <h3>{{.Label}}</h3>
    {{template "analytics-bucket" .}}
  </section>
  {{end}}
</div>
{{end}}

{{define "task-form"}}
<form class="modal-form" method="post" action="{{if .ID}}/tasks/{{.ID}}{{else}}/tasks{{end}}">
  {{if .ID}}<input type="hidden" name="_method" value="PUT">{{end}}
  <label>Title <input name="title" value="{{.Title}}" required></label>
  <label>Context
    <select name="context">
      {{$active := .Context}}
      {{range .Contexts}}
      <option value="{{.ID}}" {{if eq $active .ID}}selected{{end}}>{{.Icon}} {{.Name}}</option>
      {{end}}
    </select>
  </label>
  <label>Priority
    <select name="priority">
      <option {{if eq .Priority "Low"}}selected{{end}}>Low</option>
      <option {{if eq .Priority "Medium"}}selected{{end}}>Medium</option>
      <option {{if eq .Priority "High"}}selected{{end}}>High</option>
      <option {{if eq .Priority "Critical"}}selected{{end}}>Critical</option>
    </select>
  </label>
  <label>Status
    <select name="status">
      <option {{if eq .Status "To Do"}}selected{{end}}>To Do</option>
      <option {{if eq .Status "In Progress"}}selected{{end}}>In Progress</option>
      <option {{if eq .Status "Blocked"}}selected{{end}}>Blocked</option>
      <option {{if eq .Status "Waiting"}}selected{{end}}>Waiting</option>
      <option {{if eq .Status "Done"}}selected{{end}}>Done</option>
    </select>
  </label>
  <label>Due date <input type="date" name="due_date" value="{{.DueDate}}"></label>
  <label>Energy
    <select name="energy_needed">
      <option {{if eq .Energy "Low"}}selected{{end}}>Low</option>
      <option {{if eq .Energy "Medium"}}selected{{end}}>Medium</option>
      <option {{if eq .Energy "High"}}selected{{end}}>High</option>
    </select>
  </label>
  <label>Estimate <input name="estimated_time" value="{{.Estimate}}"></label>
  <label>Project <input name="project" value="{{.Project}}"></label>
  <label>Notes <textarea name="notes">{{.Notes}}</textarea></label>
  <div class="modal-actions">
    <button type="submit">{{if .ID}}Save{{else}}Create{{end}}</button>
    <a href="/tasks" class="button button-secondary">Cancel</a>
  </div>
</form>
{{end}}

{{define "v2g-form"}}
<form class="modal-form" method="post" action="{{if .ID}}/v2g/requests/{{.ID}}{{else}}/v2g/requests{{end}}">
  {{if .ID}}<input type="hidden" name="_method" value="PUT">{{end}}
  <label>Requester <input name="requester" value="{{.Requester}}" required></label>
  <label>Request <input name="request_summary" value="{{.Summary}}" required></label>
  <label>Source
    <select name="source">
      <option {{if eq .Source "Email"}}selected{{end}}>Email</option>
      <option {{if eq .Source "Teams"}}selected{{end}}>Teams</option>
      <option {{if eq .Source "Meeting"}}selected{{end}}>Meeting</option>
      <option {{if eq .Source "Phone"}}selected{{end}}>Phone</option>
    </select>
  </label>
  <label>Priority
    <select name="priority">
      <option {{if eq .Priority "Low"}}selected{{end}}>Low</option>
      <option {{if eq .Priority "Medium"}}selected{{end}}>Medium</option>
      <option {{if eq .Priority "High"}}selected{{end}}>High</option>
      <option {{if eq .Priority "Urgent"}}selected{{end}}>Urgent</option>
    </select>
  </label>
  <label>Status
    <select name="status">
      <option {{if eq .Status "To Do"}}selected{{end}}>To Do</option>
      <option {{if eq .Status "In Progress"}}selected{{end}}>In Progress</option>
      <option {{if eq .Status "Blocked"}}selected{{end}}>Blocked</option>
      <option {{if eq .Status "Waiting"}}selected{{end}}>Waiting</option>
      <option {{if eq .Status "Done"}}selected{{end}}>Done</option>
    </select>
  </label>
  <label>Target date <input type="date" name="target_date" value="{{.TargetDate}}"></label>
  <label>Needs Gabriel
    <select name="needs_gabriel">
      <option {{if eq .NeedsGabriel "NO"}}selected{{end}}>NO</option>
      <option {{if eq .NeedsGabriel "YES"}}selected{{end}}>YES</option>
    </select>
  </label>
  <label>Question for Gabriel <input name="gabriel_question" value="{{.Question}}"></label>
  <label>Notes <textarea name="notes">{{.Notes}}</textarea></label>
  <div class="modal-actions">
    <button type="submit">{{if .ID}}Save{{else}}Create{{end}}</button>
    <a href="/v2g" class="button button-secondary">Cancel</a>
  </div>
</form>
{{end}}

{{define "confirm-delete"}}
<div class="confirm-delete">
  <p>Delete {{.Kind}} <strong>{{.Title}}</strong>? This cannot be undone.</p>
  <form method="post" action="{{.Action}}">
    <input type="hidden" name="_method" value="DELETE">
    <input type="hidden" name="confirm" value="true">
    <button type="submit" class="button button-danger">Delete</button>
    <a href="javascript:history.back()" class="button button-secondary">Cancel</a>
  </form>
</div>
{{end}}

{{define "time-check"}}
<div class="time-check">
  <h3>⏰ Time Check</h3>
  <p>What have you been working on?</p>
  <form method="post" action="/time-check/dismiss">
    <input type="hidden" name="token" value="{{.Token}}">
    {{range .Contexts}}
    <button type="submit" name="context" value="{{.ID}}" style="background: {{.Color}}">{{.Icon}} {{.Name}}</button>
    {{end}}
  </form>
</div>
{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>LifeOS</title>
  <link rel="stylesheet" href="/static/dashboard.css">
</head>
<body>
  <nav class="tabs">
    <a href="/dashboard" {{if eq .Tab "dashboard"}}class="active"{{end}}>Dashboard</a>
    <a href="/tasks" {{if eq .Tab "tasks"}}class="active"{{end}}>Tasks</a>
    <a href="/v2g" {{if eq .Tab "v2g"}}class="active"{{end}}>V2G Queue</a>
    <a href="/analytics" {{if eq .Tab "analytics"}}class="active"{{end}}>Time</a>
  </nav>
  <main id="tab-body" data-tab="{{.Tab}}">
{{.Body}}
  </main>
  <div id="modal-host"></div>
  <script>
  (function () {
    var host = document.getElementById('modal-host');

    function bindFilter(selects, url) {
      var change = function () {
        fetch(url()).then(function (r) { return r.text(); }).then(function (html) {
          var target = document.getElementById(selects.target);
          if (target) { target.innerHTML = html; }
        });
      };
      selects.ids.forEach(function (id) {
        var el = document.getElementById(id);
        if (el) { el.addEventListener('change', change); }
      });
    }

    bindFilter({ ids: ['context-filter', 'view-filter'], target: 'task-table' }, function () {
      var ctx = document.getElementById('context-filter');
      var view = document.getElementById('view-filter');
      return '/tasks/table?context=' + (ctx ? ctx.value : 'all') + '&view=' + (view ? view.value : 'all');
    });
    bindFilter({ ids: ['v2g-view-filter'], target: 'v2g-table' }, function () {
      var view = document.getElementById('v2g-view-filter');
      return '/v2g/table?view=' + (view ? view.value : 'all');
    });

    if ('Notification' in window) {
      fetch('/notifications/permission', {
        method: 'POST',
        body: new URLSearchParams({ state: Notification.permission })
      });
    }

    var events = new EventSource('/events');
    events.addEventListener('time-check', function (e) {
      var prompt = JSON.parse(e.data);
      fetch('/time-check/prompt?token=' + prompt.token)
        .then(function (r) { return r.text(); })
        .then(function (html) { host.innerHTML = html; });
    });
    events.addEventListener('notification', function (e) {
      if ('Notification' in window && Notification.permission === 'granted') {
        var n = JSON.parse(e.data);
        new Notification(n.title, { body: n.body });
      }
    });
    events.addEventListener('request-permission', function () {
      if (!('Notification' in window)) { return; }
      Notification.requestPermission().then(function (state) {
        fetch('/notifications/permission', {
          method: 'POST',
          body: new URLSearchParams({ state: state })
        });
      });
    });
    events.addEventListener('refresh', function (e) {
      var tab = JSON.parse(e.data).tab;
      if (document.getElementById('tab-body').dataset.tab === tab) {
        window.location.reload();
      }
    });
  })();
  </script>
</body>
</html>
{{end}}
`
