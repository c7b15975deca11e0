// api/handlers/dashboard.go
package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"drawboard/api/stats"
)

var dashboardTmpl = template.Must(template.New("dashboard").Parse(dashboardHTML))

// Dashboard renders the single-page dashboard. The page is static shell
// plus client-side JS that consumes the /api endpoints, so the server only
// injects the ball ranges used by the pick inputs.
func (h *DatasetHandlers) Dashboard(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	err := dashboardTmpl.Execute(c.Writer, gin.H{
		"MaxMainBall":  stats.MaxMainBall,
		"MaxPowerball": stats.MaxPowerball,
	})
	if err != nil {
		log.Printf("Error rendering dashboard: %v", err)
		c.AbortWithStatus(http.StatusInternalServerError)
	}
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Drawboard</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0; background: #0f172a; color: #e2e8f0; }
  header { padding: 16px 24px; background: #1e293b; }
  h1 { margin: 0; font-size: 20px; }
  main { padding: 24px; max-width: 1100px; margin: 0 auto; }
  section { margin-bottom: 32px; }
  .cards { display: flex; gap: 16px; flex-wrap: wrap; }
  .card { background: #1e293b; border-radius: 8px; padding: 16px 20px; min-width: 160px; }
  .card .label { font-size: 12px; color: #94a3b8; text-transform: uppercase; }
  .card .value { font-size: 24px; font-weight: 600; margin-top: 4px; }
  .status { font-size: 13px; color: #94a3b8; margin: 8px 0 16px; }
  .status.error { color: #f87171; }
  canvas { background: #1e293b; border-radius: 8px; padding: 8px; }
  .picker input { width: 56px; padding: 6px; margin-right: 6px; border-radius: 6px; border: 1px solid #334155; background: #0f172a; color: #e2e8f0; text-align: center; }
  .picker input.pb { border-color: #dc2626; }
  .picker button { padding: 6px 16px; border-radius: 6px; border: 0; background: #2563eb; color: white; cursor: pointer; }
  #pick-result { margin-top: 12px; font-size: 14px; }
  .jackpot { color: #fbbf24; font-weight: 600; }
</style>
</head>
<body>
<header><h1>Drawboard — draw history &amp; portal traffic</h1></header>
<main>
  <section id="draws">
    <h2>Powerball history</h2>
    <div class="status" id="draw-status">loading…</div>
    <div class="cards" id="draw-cards"></div>
    <canvas id="main-freq" height="110"></canvas>
    <canvas id="pb-freq" height="90" style="margin-top:16px"></canvas>
  </section>

  <section class="picker" id="picker">
    <h2>Check your numbers</h2>
    <span id="pick-inputs"></span>
    <input class="pb" id="pick-pb" placeholder="PB" maxlength="2">
    <button id="pick-check">Check</button>
    <div id="pick-result"></div>
  </section>

  <section id="traffic">
    <h2>Portal traffic</h2>
    <div class="status" id="traffic-status">loading…</div>
    <div class="cards" id="traffic-cards"></div>
    <canvas id="traffic-chart" height="110"></canvas>
  </section>
</main>
<script>
const MAX_MAIN = {{.MaxMainBall}};
const MAX_PB = {{.MaxPowerball}};

// Per-keystroke clamp, mirroring the server's /api/draws/pick/clamp rules.
function clampBall(raw, max) {
  const n = parseFloat(raw);
  if (!isFinite(n)) return "";
  return String(Math.min(max, Math.max(1, Math.trunc(n))));
}

function card(label, value) {
  return '<div class="card"><div class="label">' + label + '</div><div class="value">' + value + '</div></div>';
}

function barChart(id, label, entries, color) {
  new Chart(document.getElementById(id), {
    type: "bar",
    data: {
      labels: entries.map(e => e.label),
      datasets: [{ label: label, data: entries.map(e => e.hits), backgroundColor: color }]
    },
    options: { plugins: { legend: { labels: { color: "#e2e8f0" } } },
      scales: { x: { ticks: { color: "#94a3b8" } }, y: { ticks: { color: "#94a3b8" } } } }
  });
}

async function loadDraws() {
  const el = document.getElementById("draw-status");
  try {
    const resp = await fetch("/api/draws/summary");
    const body = await resp.json();
    if (!resp.ok) { el.textContent = body.status + (body.error ? ": " + body.error : ""); el.className = "status error"; return; }
    const s = body.summary;
    el.textContent = body.status + " — " + s.totalDraws + " draws" + (s.yearRange ? " (" + s.yearRange + ")" : "");
    document.getElementById("draw-cards").innerHTML =
      card("Total draws", s.totalDraws) +
      card("Avg main-ball sum", s.averageMainSum ?? "—") +
      card("Top multiplier", s.mostCommonMultiplier ? s.mostCommonMultiplier.label + "× (" + s.mostCommonMultiplier.hits + ")" : "—");
    barChart("main-freq", "Main-number hits (top 15)", s.mainFrequencies, "#3b82f6");
    barChart("pb-freq", "Powerball hits (top 10)", s.powerballFrequencies, "#dc2626");
  } catch (err) {
    el.textContent = "error: " + err; el.className = "status error";
  }
}

async function loadTraffic() {
  const el = document.getElementById("traffic-status");
  try {
    const [sumResp, daysResp] = await Promise.all([fetch("/api/traffic/summary"), fetch("/api/traffic")]);
    const sumBody = await sumResp.json();
    if (!sumResp.ok) { el.textContent = sumBody.status + (sumBody.error ? ": " + sumBody.error : ""); el.className = "status error"; return; }
    const s = sumBody.summary;
    el.textContent = sumBody.status + " — " + s.totalDays + " days" + (s.yearRange ? " (" + s.yearRange + ")" : "");
    document.getElementById("traffic-cards").innerHTML =
      card("Days tracked", s.totalDays) +
      card("Combined users", s.totalCombined) +
      card("Peak day", s.peakDay ? s.peakDay.dateLabel + " (" + s.peakDay.combinedUsers + ")" : "—");
    const days = (await daysResp.json()).days || [];
    new Chart(document.getElementById("traffic-chart"), {
      type: "line",
      data: { labels: days.map(d => d.dateLabel),
        datasets: [{ label: "Combined users", data: days.map(d => d.combinedUsers), borderColor: "#10b981", tension: 0.2 }] },
      options: { plugins: { legend: { labels: { color: "#e2e8f0" } } },
        scales: { x: { ticks: { color: "#94a3b8" } }, y: { ticks: { color: "#94a3b8" } } } }
    });
  } catch (err) {
    el.textContent = "error: " + err; el.className = "status error";
  }
}

function setupPicker() {
  const holder = document.getElementById("pick-inputs");
  for (let i = 0; i < 5; i++) {
    const input = document.createElement("input");
    input.maxLength = 2;
    input.placeholder = String(i + 1);
    input.addEventListener("input", () => { input.value = clampBall(input.value, MAX_MAIN); });
    holder.appendChild(input);
  }
  const pb = document.getElementById("pick-pb");
  pb.addEventListener("input", () => { pb.value = clampBall(pb.value, MAX_PB); });

  document.getElementById("pick-check").addEventListener("click", async () => {
    const mains = Array.from(holder.querySelectorAll("input")).map(i => i.value);
    const resp = await fetch("/api/draws/pick", {
      method: "POST",
      headers: { "Content-Type": "application/json" },
      body: JSON.stringify({ mainNumbers: mains, powerball: pb.value })
    });
    const result = await resp.json();
    const out = document.getElementById("pick-result");
    if (!resp.ok) { out.textContent = result.error || "check failed"; return; }
    if (!result.ready) { out.textContent = result.reason; return; }
    if (result.jackpotHits.length > 0) {
      out.innerHTML = '<span class="jackpot">Jackpot!</span> Matched ' +
        result.jackpotHits.map(d => d.dateLabel).join(", ");
    } else {
      out.innerHTML = "No jackpot. Closest draws:<br>" + result.bestDraws.map(m =>
        m.draw.dateLabel + " — " + m.mainMatches + " main" + (m.powerballMatch ? " + PB" : "")).join("<br>");
    }
  });
}

loadDraws();
loadTraffic();
setupPicker();
</script>
</body>
</html>
`
