package page

// pageTemplate is the dashboard skeleton. Every element id that a renderer
// targets is declared here.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>{{styles}}</style>
</head>
<body data-socket="{{.SocketPath}}" data-alert="{{.Alert}}">
  <header class="site-header">
    <h1>{{.Title}}</h1>
    <p class="subtitle">Analysis date: <span id="analysis-date">-</span></p>
    <nav class="nav">
      {{range .Nav}}<a class="nav-btn" id="{{navID .ID}}" data-text="{{.ID}}" href="{{.Href}}">{{.Label}}</a>
      {{end}}
    </nav>
  </header>
  {{if .Alert}}<div class="load-error" id="load-error" role="alert">{{.Alert}}</div>{{end}}

  <main>
    <section class="view" id="single-text-view">
      <div class="text-header">
        <h2 id="text-title"></h2>
        <p id="text-author"></p>
      </div>

      <div class="stats-grid">
        <div class="stat-card"><div class="stat-value" id="word-count">-</div><div class="stat-label">Words</div></div>
        <div class="stat-card"><div class="stat-value" id="sentence-count">-</div><div class="stat-label">Sentences</div></div>
        <div class="stat-card"><div class="stat-value" id="avg-sentence">-</div><div class="stat-label">Avg Sentence Length</div></div>
        <div class="stat-card"><div class="stat-value" id="lexical-diversity">-</div><div class="stat-label">Lexical Diversity</div></div>
      </div>

      <div class="panel">
        <h3>Most Frequent Words</h3>
        <div class="wordcloud" id="wordcloud"></div>
      </div>

      <div class="panel">
        <h3>Sentiment</h3>
        {{range kinds}}
        <div class="sentiment-row">
          <span class="sentiment-label">{{label .}}</span>
          <div class="bar-track"><div class="bar-fill bar-{{.}}" id="{{barID .}}"></div></div>
          <span class="sentiment-value" id="{{valueID .}}">-</span>
        </div>
        {{end}}
        <div class="metric-row">
          <div><strong>Polarity:</strong> <span id="polarity">-</span></div>
          <div><strong>Subjectivity:</strong> <span id="subjectivity">-</span></div>
        </div>
      </div>

      <div class="panel">
        <h3>Thematic Analysis</h3>
        <div class="theme-tabs">
          {{range .Themes}}<a class="theme-tab" id="{{themeID .ID}}" data-theme="{{.ID}}" href="{{.Href}}">{{.Label}}</a>
          {{end}}
        </div>
        <div class="metric-row">
          <div><strong>Occurrences:</strong> <span id="theme-count">-</span></div>
          <div><strong>Density (per 1,000 words):</strong> <span id="theme-density">-</span></div>
        </div>
        <div class="theme-examples" id="theme-examples-list"></div>
      </div>

      <div class="panel style-grid">
        <div>
          <h3>Vocabulary Richness</h3>
          <dl>
            <dt>Type-Token Ratio</dt><dd id="ttr">-</dd>
            <dt>Unique Words</dt><dd id="unique-words">-</dd>
            <dt>Avg Word Length</dt><dd id="avg-word-length">-</dd>
          </dl>
        </div>
        <div>
          <h3>Sentence Complexity</h3>
          <dl>
            <dt>Average Length</dt><dd id="sentence-avg">-</dd>
            <dt>Shortest</dt><dd id="sentence-min">-</dd>
            <dt>Longest</dt><dd id="sentence-max">-</dd>
          </dl>
        </div>
        <div>
          <h3>Readability</h3>
          <dl>
            <dt>Flesch Reading Ease</dt><dd id="flesch-ease">-</dd>
            <dt>Flesch-Kincaid Grade</dt><dd id="flesch-grade">-</dd>
          </dl>
        </div>
      </div>
    </section>

    <section class="view" id="comparison-view">
      <div class="panel">
        <h3>Side-by-Side Metrics</h3>
        <table class="comparison-table">
          <thead><tr><th>Metric</th><th>{{.LeftTitle}}</th><th>{{.RightTitle}}</th></tr></thead>
          <tbody id="comparison-table-body"></tbody>
        </table>
      </div>
      <div class="compare-grid">
        <div class="panel"><h3>{{.LeftTitle}}: Sentiment</h3><div id="{{chartID .Pair.Left}}"></div></div>
        <div class="panel"><h3>{{.RightTitle}}: Sentiment</h3><div id="{{chartID .Pair.Right}}"></div></div>
        <div class="panel"><h3>{{.LeftTitle}}: Words</h3><div class="wordcloud" id="{{cloudID .Pair.Left}}"></div></div>
        <div class="panel"><h3>{{.RightTitle}}: Words</h3><div class="wordcloud" id="{{cloudID .Pair.Right}}"></div></div>
      </div>
    </section>
  </main>

  <script>
    if (document.body.dataset.alert) { alert(document.body.dataset.alert); }
  </script>
  {{if .Live}}<script>{{clientJS}}</script>{{end}}
</body>
</html>
`

const cssContent = `
:root { --bg: #f5f6fa; --fg: #2c3e50; --card: #fff; --muted: #7f8c8d; --accent: #6c5ce7; --border: #dfe4ea; }
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; }
.site-header { background: linear-gradient(135deg, #2c3e50, #6c5ce7); color: #fff; padding: 1.5rem 2rem; }
.site-header h1 { margin: 0 0 .25rem; font-size: 1.6rem; }
.subtitle { margin: 0 0 1rem; opacity: .8; font-size: .875rem; }
.nav { display: flex; gap: .5rem; flex-wrap: wrap; }
.nav-btn, .theme-tab { display: inline-block; padding: .4rem .9rem; border-radius: 999px; text-decoration: none; font-size: .875rem; cursor: pointer; }
.nav-btn { color: #fff; border: 1px solid rgba(255,255,255,.5); }
.nav-btn.active { background: #fff; color: var(--accent); }
.load-error { margin: 1rem 2rem; padding: .75rem 1rem; border-radius: 6px; background: #fdecea; color: #c0392b; }
main { padding: 1.5rem 2rem; max-width: 1200px; margin: 0 auto; }
.view { display: none; }
.view.active { display: block; }
.text-header h2 { margin: 0; }
.text-header p { margin: 0 0 1rem; color: var(--muted); }
.stats-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(160px, 1fr)); gap: 1rem; margin-bottom: 1rem; }
.stat-card, .panel { background: var(--card); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; }
.panel { margin-bottom: 1rem; }
.panel h3 { margin-top: 0; font-size: 1rem; }
.stat-value { font-size: 1.5rem; font-weight: 700; }
.stat-label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.wordcloud { display: flex; flex-wrap: wrap; gap: .25rem .75rem; align-items: baseline; min-height: 80px; }
.word-item { cursor: default; line-height: 1.1; }
.sentiment-row { display: grid; grid-template-columns: 90px 1fr 60px; gap: .75rem; align-items: center; margin-bottom: .5rem; }
.bar-track, .chart-track { background: #ecf0f1; border-radius: 10px; overflow: hidden; height: 20px; }
.bar-fill, .chart-fill { height: 100%; width: 0; }
.bar-positive, .chart-fill-positive { background: linear-gradient(90deg, #27ae60, #2ecc71); }
.bar-negative, .chart-fill-negative { background: linear-gradient(90deg, #c0392b, #e74c3c); }
.bar-neutral, .chart-fill-neutral { background: linear-gradient(90deg, #7f8c8d, #95a5a6); }
.chart-row { margin-bottom: 15px; }
.chart-label { margin-bottom: 8px; }
.chart-scores { margin-top: 15px; padding-top: 15px; border-top: 1px solid #ddd; }
.metric-row { display: flex; gap: 2rem; margin: .75rem 0; }
.theme-tabs { display: flex; gap: .5rem; margin-bottom: .5rem; }
.theme-tab { border: 1px solid var(--accent); color: var(--accent); }
.theme-tab.active { background: var(--accent); color: #fff; }
.example-item { border-left: 3px solid var(--accent); padding: .25rem .75rem; margin-bottom: .75rem; }
.example-keyword { font-weight: 700; color: var(--accent); font-size: .8rem; text-transform: uppercase; }
.example-sentence { margin: .25rem 0 0; font-style: italic; }
.style-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1rem; }
dl { display: grid; grid-template-columns: 1fr auto; gap: .25rem 1rem; margin: 0; }
dt { color: var(--muted); }
dd { margin: 0; font-weight: 600; }
.comparison-table { width: 100%; border-collapse: collapse; }
.comparison-table th, .comparison-table td { padding: .5rem .75rem; border-bottom: 1px solid var(--border); text-align: left; }
.compare-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; }
@media (max-width: 768px) { .compare-grid { grid-template-columns: 1fr; } }
`

// jsContent connects to the view socket and applies instruction lists.
// Text is only ever assigned through textContent and text nodes.
const jsContent = `
(function () {
  var path = document.body.dataset.socket;
  if (!path || !window.WebSocket) { return; }
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + path);

  function build(n) {
    var el = document.createElement(n.tag);
    if (n.id) { el.id = n.id; }
    if (n.class) { el.className = n.class; }
    if (n.title) { el.title = n.title; }
    (n.style || []).forEach(function (d) { el.style.setProperty(d.property, d.value); });
    if (n.text) { el.appendChild(document.createTextNode(n.text)); }
    (n.children || []).forEach(function (c) { el.appendChild(build(c)); });
    return el;
  }

  function apply(list) {
    list.forEach(function (ins) {
      var el = document.getElementById(ins.target);
      if (!el) { throw new Error("missing element #" + ins.target); }
      switch (ins.op) {
        case "clear": el.replaceChildren(); break;
        case "set_text": el.textContent = ins.text || ""; break;
        case "set_style": el.style.setProperty(ins.property, ins.value); break;
        case "add_class": el.classList.add(ins.class); break;
        case "remove_class": el.classList.remove(ins.class); break;
        case "append": el.appendChild(build(ins.node)); break;
      }
    });
  }

  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "render") { apply(msg.instructions || []); }
    else if (msg.type === "error") { console.error(msg.content); }
  };

  function send(type, id) {
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({ type: type, id: id }));
      return true;
    }
    return false;
  }

  document.querySelectorAll(".nav-btn").forEach(function (btn) {
    btn.addEventListener("click", function (e) {
      if (send("select_text", btn.dataset.text)) { e.preventDefault(); }
    });
  });
  document.querySelectorAll(".theme-tab").forEach(function (tab) {
    tab.addEventListener("click", function (e) {
      if (send("select_theme", tab.dataset.theme)) { e.preventDefault(); }
    });
  });
})();
`
