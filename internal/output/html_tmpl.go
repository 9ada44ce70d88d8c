// Copyright 2026 The SUAPS Dashboard Authors
// SPDX-License-Identifier: MIT

package output

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>SUAPS Dashboard</title>
<style>
:root {
  --bg: #F5F7FA; --fg: #37474F; --card-bg: #fff; --border: #dee2e6;
  --table-alt: #f1f3f5; --hover: #e9ecef; --muted: #78909C;
  --primary: #1E88E5; --secondary: #26A69A; --accent: #FF8A65;
  --good: #26A69A; --mid: #FFB74D; --bad: #e53935;
}
@media (prefers-color-scheme: dark) {
  :root {
    --bg: #1a1a2e; --fg: #e9ecef; --card-bg: #16213e; --border: #495057;
    --table-alt: #0f3460; --hover: #1a1a4e; --muted: #adb5bd;
    --primary: #5b9aff;
  }
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; padding: 1rem; max-width: 1400px; margin: 0 auto; }
header { background: var(--primary); color: #fff; padding: 1rem; border-radius: 10px; margin-bottom: 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { font-size: .875rem; opacity: .85; }
h2 { color: var(--primary); font-size: 1.2rem; margin: 1.5rem 0 .75rem; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(140px, 1fr)); gap: .75rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: .75rem; text-align: center; }
.card .value { font-size: 1.5rem; font-weight: 700; color: var(--primary); }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.charts { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-bottom: 1.5rem; }
@media (max-width: 768px) { .charts { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; overflow-x: auto; }
.chart-box h3 { font-size: .875rem; margin-bottom: .5rem; }
.wide { grid-column: 1 / -1; }
table { width: 100%; border-collapse: collapse; font-size: .8125rem; }
th, td { padding: .4rem .6rem; text-align: left; border-bottom: 1px solid var(--border); }
td.num, th.num { text-align: right; }
tr:nth-child(even) { background: var(--table-alt); }
tr:hover { background: var(--hover); }
select { padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--card-bg); color: var(--fg); font-size: .8125rem; margin-bottom: .5rem; }
.hidden { display: none; }
.muted { color: var(--muted); font-size: .8125rem; }
.warning { color: var(--bad); font-size: .8125rem; }
.improving { color: var(--good); font-weight: 700; }
.degrading { color: var(--bad); font-weight: 700; }
</style>
</head>
<body>
<header>
  <h1>SUAPS Dashboard</h1>
  <p>{{.D.Semester}} &middot; {{.Site}} &middot; generated {{.GeneratedAt}} &middot; run {{.D.RunID}}</p>
</header>
{{range .D.Warnings}}<p class="warning">warning: {{.}}</p>{{end}}

{{if .Show.overview}}{{with .D.Overview}}
<section id="overview">
<h2>Overview</h2>
<div class="cards">
  <div class="card"><div class="value">{{.Registrations}}</div><div class="label">Registrations</div></div>
  <div class="card"><div class="value">{{.Students}}</div><div class="label">Students</div></div>
  <div class="card"><div class="value">{{.Activities}}</div><div class="label">Activities</div></div>
  <div class="card"><div class="value">{{.Teachers}}</div><div class="label">Teachers</div></div>
</div>
<div class="charts">
  {{if .Groups}}<div class="chart-box"><h3>By activity group</h3><div id="chart-groups"></div></div>{{end}}
  {{with .Registration}}<div class="chart-box"><h3>Registration types</h3><div id="chart-registration"></div>
    <table>{{$d := .}}{{range .Counts}}<tr><td>{{.Label}}</td><td class="num">{{.Count}}</td><td class="num">{{share $d .}}</td></tr>{{end}}</table>
  </div>{{end}}
  {{if .Types}}<div class="chart-box"><h3>Student types</h3><div id="chart-types"></div></div>{{end}}
</div>
{{range .Missing}}<p class="muted">Column "{{.}}" not found.</p>{{end}}
</section>
{{end}}{{end}}

{{if .Show.statistics}}{{with .D.Statistics}}
<section id="statistics">
<h2>Main statistics</h2>
<div class="charts">
  {{if .TopActivities}}<div class="chart-box"><h3>Top activities</h3><div id="chart-activities"></div></div>{{end}}
  {{if .Departments}}<div class="chart-box"><h3>Registrations by department</h3><div id="chart-departments"></div></div>{{end}}
  {{if .Days}}<div class="chart-box"><h3>Registrations by day</h3><div id="chart-days"></div></div>{{end}}
  {{if .Sites}}<div class="chart-box"><h3>Registrations by site</h3><div id="chart-sites"></div></div>{{end}}
</div>
{{range .Missing}}<p class="muted">Column "{{.}}" not found.</p>{{end}}
</section>
{{end}}{{end}}

{{if .Show.advanced}}{{with .D.Advanced}}
<section id="advanced">
<h2>Advanced analysis</h2>
<div class="charts">
  {{if .Levels}}<div class="chart-box"><h3>Registrations by level</h3><div id="chart-levels"></div></div>{{end}}
  {{if .Periods}}<div class="chart-box"><h3>Registrations by period</h3><div id="chart-periods"></div></div>{{end}}
  {{if .TopTeachers}}<div class="chart-box"><h3>Top teachers</h3><div id="chart-teachers"></div></div>{{end}}
  {{if .Heatmap}}<div class="chart-box"><h3>Registrations by day and time slot</h3><div id="chart-heatmap"></div></div>{{end}}
</div>
{{range .Missing}}<p class="muted">Column "{{.}}" not found.</p>{{end}}
</section>
{{end}}{{end}}

{{if .Show.attendance}}
<section id="attendance">
{{range .Levels}}
<h2>Attendance: {{$.D.Activity}} ({{.Level}})</h2>
{{if not .Available}}<p class="warning">Presence export unavailable: {{.Error}}</p>{{else}}
<div class="cards">
  <div class="card"><div class="value">{{.Students}}</div><div class="label">Students</div></div>
  <div class="card"><div class="value">{{len .Summaries}}</div><div class="label">Sessions</div></div>
  <div class="card"><div class="value">{{.Average}}</div><div class="label">Average participation</div></div>
</div>
<div class="charts">
  <div class="chart-box">
    <h3>Presence data</h3>
    {{if .Summaries}}
    <table>
      <thead><tr><th>Session</th><th class="num">Attended</th><th class="num">Students</th><th class="num">Rate</th></tr></thead>
      <tbody>
      {{range .Summaries}}<tr><td>{{.Session}}</td><td class="num">{{.Attended}}</td><td class="num">{{.Total}}</td><td class="num">{{.Rate}}</td></tr>
      {{end}}
      </tbody>
    </table>
    {{else}}<p class="muted">No course session columns found.</p>{{end}}
  </div>
  <div class="chart-box"><h3>Average participation</h3><div id="chart-{{.ID}}-gauge"></div></div>
  <div class="chart-box">
    <h3>Participants by session</h3>
    {{if .Participants}}
    <select id="{{.ID}}-session" onchange="showSession('{{.ID}}', this.value)">
      {{$sel := .Selected}}{{range .Participants}}<option value="{{.Session}}"{{if eq .Session $sel}} selected{{end}}>{{.Session}} ({{len .Participants}})</option>{{end}}
    </select>
    {{$id := .ID}}{{range .Participants}}
    <div class="session" data-level-id="{{$id}}" data-session="{{.Session}}">
      {{if .Participants}}
      <p class="muted">Participants: {{len .Participants}}{{if .Gender}} ({{range $i, $g := .Gender}}{{if $i}}, {{end}}{{$g.Label}} {{$g.Count}}{{end}}){{end}}</p>
      <table>
        <thead><tr><th>First name</th><th>Last name</th><th>Email</th><th>Sex</th><th>Status</th></tr></thead>
        <tbody>{{range .Participants}}<tr><td>{{.FirstName}}</td><td>{{.LastName}}</td><td>{{.Email}}</td><td>{{.Sex}}</td><td>{{.Status}}</td></tr>{{end}}</tbody>
      </table>
      {{else}}<p class="muted">No participants.</p>{{end}}
    </div>
    {{end}}
    {{else}}<p class="muted">No sessions.</p>{{end}}
  </div>
  <div class="chart-box"><h3>Students by gender</h3><div id="chart-{{.ID}}-gender"></div></div>
  <div class="chart-box wide"><h3>Presence evolution</h3><div id="chart-{{.ID}}-line"></div></div>
</div>
{{range .Rejected}}<p class="muted">Ignored column "{{.Column}}": {{.Reason}}</p>{{end}}
{{end}}
{{end}}
</section>
{{end}}

{{if .Show.students}}{{with .D.Students}}{{if .TopDepartments}}
<section id="students">
<h2>Students</h2>
<div class="charts">
  <div class="chart-box wide"><h3>Departments and activities</h3><div id="chart-scatter"></div></div>
  <div class="chart-box"><h3>Top departments</h3><div id="chart-topdepts"></div></div>
  <div class="chart-box"><h3>Main activities per department</h3><div id="chart-treemap"></div></div>
</div>
</section>
{{end}}{{end}}{{end}}

{{if .Show.trends}}{{with .D.Trends}}
<section id="trends">
<h2>Attendance trends</h2>
<table>
  <thead><tr><th>Level</th><th class="num">Current</th><th class="num">Previous</th><th class="num">Delta</th><th>Direction</th></tr></thead>
  <tbody>{{range .Lines}}<tr><td>{{.Level}}</td><td class="num">{{.Current}}</td><td class="num">{{.Previous}}</td><td class="num">{{printf "%+.2f" .Delta}}</td><td class="{{.Direction}}">{{.Direction}}</td></tr>{{end}}</tbody>
</table>
</section>
{{end}}{{end}}

<script>
var chartData = {{json .ChartData}};
var palette = ["#1E88E5","#26A69A","#FF8A65","#7986CB","#4DB6AC","#FFB74D","#BA68C8","#4FC3F7"];
var scale = ["#E3F2FD","#90CAF9","#42A5F5","#1E88E5","#1565C0"];

function svgEl(tag, attrs) {
  var el = document.createElementNS("http://www.w3.org/2000/svg", tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function svgText(svg, x, y, text, attrs) {
  var t = svgEl("text", Object.assign({x:x, y:y, fill:"currentColor", "font-size":"11"}, attrs || {}));
  t.textContent = text;
  svg.appendChild(t);
}

function shorten(s, n) { return s.length > n ? s.slice(0, n-2)+"..." : s; }

function renderBarChart(id, data, colors) {
  var c = document.getElementById(id); if (!c || !data || !data.labels.length) return;
  var max = Math.max.apply(null, data.values) || 1;
  var h = data.labels.length * 28 + 4;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 420 "+h});
  for (var i = 0; i < data.labels.length; i++) {
    var w = (data.values[i]/max)*260;
    var y = i*28+2;
    svg.appendChild(svgEl("rect", {x:130, y:y, width:Math.max(w,2), height:20, fill:colors[i%colors.length], rx:3}));
    svgText(svg, 125, y+14, shorten(data.labels[i], 22), {"text-anchor":"end"});
    svgText(svg, 135+w, y+14, data.values[i]);
  }
  c.appendChild(svg);
}

function renderDoughnut(id, data, colors) {
  var c = document.getElementById(id); if (!c || !data) return;
  var total = data.values.reduce(function(a,b){return a+b},0);
  if (!total) return;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 320 "+Math.max(160, data.labels.length*18+20)});
  var cx=80, cy=80, r=60, angle=-Math.PI/2;
  for (var i = 0; i < data.values.length; i++) {
    if (data.values[i] === 0) continue;
    var slice = (data.values[i]/total)*Math.PI*2;
    if (slice >= Math.PI*2 - 1e-9) {
      svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:r, fill:colors[i%colors.length]}));
      continue;
    }
    var x1=cx+r*Math.cos(angle), y1=cy+r*Math.sin(angle);
    angle += slice;
    var x2=cx+r*Math.cos(angle), y2=cy+r*Math.sin(angle);
    var large = slice > Math.PI ? 1 : 0;
    var d = "M"+cx+","+cy+" L"+x1+","+y1+" A"+r+","+r+" 0 "+large+",1 "+x2+","+y2+" Z";
    svg.appendChild(svgEl("path", {d:d, fill:colors[i%colors.length]}));
  }
  svg.appendChild(svgEl("circle", {cx:cx, cy:cy, r:30, fill:"var(--card-bg)"}));
  for (var j = 0; j < data.labels.length; j++) {
    var ly = 16 + j*18;
    svg.appendChild(svgEl("rect", {x:175, y:ly-8, width:10, height:10, fill:colors[j%colors.length], rx:2}));
    svgText(svg, 190, ly+1, shorten(data.labels[j], 18)+" ("+(100*data.values[j]/total).toFixed(1)+"%)");
  }
  c.appendChild(svg);
}

function renderHeatmap(id, hm) {
  var c = document.getElementById(id); if (!c || !hm || !hm.days) return;
  var cw = 60, ch = 22, left = 110, top = 20;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 "+(left+hm.days.length*cw+4)+" "+(top+hm.slots.length*ch+4)});
  for (var d = 0; d < hm.days.length; d++) svgText(svg, left+d*cw+cw/2, 14, shorten(hm.days[d], 9), {"text-anchor":"middle"});
  for (var s = 0; s < hm.slots.length; s++) {
    svgText(svg, left-5, top+s*ch+15, shorten(hm.slots[s], 16), {"text-anchor":"end"});
    for (var d2 = 0; d2 < hm.days.length; d2++) {
      var v = hm.cells[d2][s];
      var idx = hm.max ? Math.min(scale.length-1, Math.floor(v/hm.max*(scale.length-1)+0.5)) : 0;
      svg.appendChild(svgEl("rect", {x:left+d2*cw, y:top+s*ch, width:cw-2, height:ch-2, fill:v ? scale[idx] : "var(--table-alt)", rx:2}));
      if (v) svgText(svg, left+d2*cw+cw/2, top+s*ch+15, v, {"text-anchor":"middle"});
    }
  }
  c.appendChild(svg);
}

function renderScatter(id, cells) {
  var c = document.getElementById(id); if (!c || !cells || !cells.length) return;
  var rows = [], cols = [], max = 1;
  cells.forEach(function(e){
    if (rows.indexOf(e.row) < 0) rows.push(e.row);
    if (cols.indexOf(e.col) < 0) cols.push(e.col);
    max = Math.max(max, e.count);
  });
  cols.sort();
  var cw = 34, ch = 26, left = 150, bottom = 120;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 "+(left+cols.length*cw+10)+" "+(rows.length*ch+bottom)});
  rows.forEach(function(r, i){ svgText(svg, left-6, i*ch+ch/2+4, shorten(r, 22), {"text-anchor":"end"}); });
  cols.forEach(function(col, j){
    var x = left+j*cw+cw/2, y = rows.length*ch+8;
    svgText(svg, x, y, shorten(col, 18), {transform:"rotate(60 "+x+" "+y+")"});
  });
  cells.forEach(function(e){
    var x = left+cols.indexOf(e.col)*cw+cw/2, y = rows.indexOf(e.row)*ch+ch/2;
    var circle = svgEl("circle", {cx:x, cy:y, r:3+9*Math.sqrt(e.count/max), fill:palette[rows.indexOf(e.row)%palette.length], "fill-opacity":0.75});
    var title = svgEl("title", {}); title.textContent = e.row+" / "+e.col+": "+e.count;
    circle.appendChild(title);
    svg.appendChild(circle);
  });
  c.appendChild(svg);
}

function renderTreemap(id, nodes) {
  var c = document.getElementById(id); if (!c || !nodes || !nodes.length) return;
  var W = 400, H = 260;
  var total = nodes.reduce(function(a,n){return a+n.value},0) || 1;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 "+W+" "+H});
  var x = 0;
  nodes.forEach(function(n, i){
    var w = W*n.value/total, y = 0;
    (n.children || []).forEach(function(ch){
      var h = H*ch.value/n.value;
      svg.appendChild(svgEl("rect", {x:x, y:y, width:Math.max(w-1,1), height:Math.max(h-1,1), fill:palette[i%palette.length], "fill-opacity":0.85}));
      if (w > 40 && h > 14) svgText(svg, x+3, y+12, shorten(ch.label, Math.floor(w/6)), {fill:"#fff", "font-size":"9"});
      y += h;
    });
    if (w > 30) svgText(svg, x+3, H-4, shorten(n.label, Math.floor(w/6)), {fill:"#fff", "font-weight":"700", "font-size":"9"});
    x += w;
  });
  c.appendChild(svg);
}

function renderGauge(id, value) {
  var c = document.getElementById(id); if (!c) return;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 240 140"});
  var cx = 120, cy = 120, r = 90;
  function arc(from, to, color) {
    var a1 = Math.PI*(1-from/100), a2 = Math.PI*(1-to/100);
    var d = "M"+(cx+r*Math.cos(a1))+","+(cy-r*Math.sin(a1))+" A"+r+","+r+" 0 0,1 "+(cx+r*Math.cos(a2))+","+(cy-r*Math.sin(a2));
    svg.appendChild(svgEl("path", {d:d, stroke:color, "stroke-width":18, fill:"none"}));
  }
  arc(0, 50, "#FFCDD2"); arc(50, 75, "#FFF9C4"); arc(75, 100, "#C8E6C9");
  if (value !== null) {
    arc(0, Math.max(0.5, value), "var(--primary)");
    svgText(svg, cx, cy-10, value.toFixed(1)+"%", {"text-anchor":"middle", "font-size":"22", "font-weight":"700"});
  } else {
    svgText(svg, cx, cy-10, "N/A", {"text-anchor":"middle", "font-size":"22"});
  }
  c.appendChild(svg);
}

function renderLine(id, lvl) {
  var c = document.getElementById(id); if (!c || !lvl.sessions || !lvl.sessions.length) return;
  var W = 600, H = 220, left = 40, right = 40, top = 15, bottom = 30;
  var n = lvl.sessions.length, maxA = Math.max.apply(null, lvl.attended) || 1;
  var step = n > 1 ? (W-left-right)/(n-1) : 0;
  var svg = svgEl("svg", {width:"100%", viewBox:"0 0 "+W+" "+H});
  function px(i) { return left + (n > 1 ? i*step : (W-left-right)/2); }
  var bw = Math.max(6, Math.min(30, step*0.5 || 30));
  for (var i = 0; i < n; i++) {
    var bh = (H-top-bottom)*lvl.attended[i]/maxA;
    svg.appendChild(svgEl("rect", {x:px(i)-bw/2, y:H-bottom-bh, width:bw, height:bh, fill:"var(--primary)", "fill-opacity":0.6}));
    svgText(svg, px(i), H-bottom+14, lvl.sessions[i], {"text-anchor":"middle", "font-size":"9"});
  }
  var pts = [];
  for (var j = 0; j < n; j++) {
    if (lvl.rates[j] === null) continue;
    var y = H-bottom-(H-top-bottom)*lvl.rates[j]/100;
    pts.push(px(j)+","+y);
    svg.appendChild(svgEl("circle", {cx:px(j), cy:y, r:3, fill:"var(--accent)"}));
  }
  if (pts.length > 1) svg.appendChild(svgEl("polyline", {points:pts.join(" "), fill:"none", stroke:"var(--accent)", "stroke-width":2}));
  svgText(svg, 4, top+4, maxA, {"font-size":"9"});
  svgText(svg, W-4, top+4, "100%", {"font-size":"9", "text-anchor":"end"});
  c.appendChild(svg);
}

function showSession(levelId, session) {
  var boxes = document.querySelectorAll("[data-level-id='"+levelId+"']");
  for (var i = 0; i < boxes.length; i++) boxes[i].classList.toggle("hidden", boxes[i].dataset.session !== session);
}

(function(){
  renderDoughnut("chart-groups", chartData.groups, palette);
  renderDoughnut("chart-registration", chartData.registration, palette);
  renderDoughnut("chart-types", chartData.types, palette);
  renderBarChart("chart-activities", chartData.activities, palette);
  renderBarChart("chart-departments", chartData.departments, ["#26A69A"]);
  renderBarChart("chart-days", chartData.days, ["#1E88E5"]);
  renderBarChart("chart-sites", chartData.sites, palette);
  renderBarChart("chart-levels", chartData.levels, palette);
  renderDoughnut("chart-periods", chartData.periods, palette);
  renderBarChart("chart-teachers", chartData.teachers, ["#FF8A65"]);
  renderHeatmap("chart-heatmap", chartData.heatmap);
  renderScatter("chart-scatter", chartData.scatter);
  renderBarChart("chart-topdepts", chartData.topDepts, palette);
  renderTreemap("chart-treemap", chartData.treemap);
  (chartData.attendance || []).forEach(function(lvl){
    renderGauge("chart-"+lvl.id+"-gauge", lvl.average);
    renderDoughnut("chart-"+lvl.id+"-gender", lvl.gender, ["#1E88E5","#FF8A65","#78909C"]);
    renderLine("chart-"+lvl.id+"-line", lvl);
    var sel = document.getElementById(lvl.id+"-session");
    if (sel) showSession(lvl.id, sel.value);
  });
})();
</script>
</body>
</html>`
