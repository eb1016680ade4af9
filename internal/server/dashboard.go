package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// serveDashboard renders the single-page monitoring UI. The page talks to the
// JSON API and the live websocket feed served by this same process.
func serveDashboard(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, dashboardHTML)
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Oil Rig Sensor Dashboard</title>
    <script src="https://cdn.jsdelivr.net/npm/chart.js"></script>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: 'Segoe UI', system-ui, sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
            padding: 24px;
        }

        .container {
            max-width: 1100px;
            margin: 0 auto;
        }

        header {
            display: flex;
            align-items: baseline;
            justify-content: space-between;
            flex-wrap: wrap;
            gap: 8px;
            margin-bottom: 20px;
        }

        h1 {
            font-size: 1.6rem;
            font-weight: 600;
        }

        .feed-mode {
            font-size: 0.85rem;
            color: #94a3b8;
        }

        .feed-mode .dot {
            display: inline-block;
            width: 8px;
            height: 8px;
            border-radius: 50%;
            background: #64748b;
            margin-right: 6px;
        }

        .feed-mode.live .dot { background: #22c55e; }
        .feed-mode.polling .dot { background: #f59e0b; }

        .legend {
            display: flex;
            gap: 16px;
            margin-bottom: 16px;
            font-size: 0.85rem;
            color: #94a3b8;
        }

        .legend .chip {
            display: inline-block;
            width: 10px;
            height: 10px;
            border-radius: 2px;
            margin-right: 6px;
        }

        .card {
            background: #1e293b;
            border: 1px solid #334155;
            border-radius: 12px;
            padding: 20px;
            margin-bottom: 20px;
        }

        .card-title {
            font-size: 1.1rem;
            font-weight: 600;
            margin-bottom: 4px;
        }

        .card-hint {
            font-size: 0.85rem;
            color: #94a3b8;
            margin-bottom: 12px;
        }

        .chart-container {
            position: relative;
            height: 320px;
        }

        .chart-container.short {
            height: 220px;
        }

        .placeholder {
            color: #94a3b8;
            text-align: center;
            padding: 60px 0;
        }

        .hidden {
            display: none;
        }
    </style>
</head>
<body>
    <div class="container">
        <header>
            <h1>Oil Rig Sensor Dashboard</h1>
            <div class="feed-mode" id="feedMode"><span class="dot"></span><span id="feedModeText">connecting</span></div>
        </header>

        <div class="legend">
            <span><span class="chip" style="background:#22c55e"></span>Good</span>
            <span><span class="chip" style="background:#f59e0b"></span>Concern</span>
            <span><span class="chip" style="background:#ef4444"></span>Malfunction</span>
        </div>

        <div class="card">
            <div class="card-title">Current readings by category</div>
            <div class="card-hint">Click a bar to inspect its 24-hour series.</div>
            <div class="chart-container">
                <canvas id="categoryChart"></canvas>
            </div>
        </div>

        <div class="card">
            <div class="card-title" id="detailTitle">Category detail</div>
            <div class="card-hint" id="detailHint">No category selected yet.</div>
            <div class="placeholder" id="detailPlaceholder">Click a category bar above to load its 24-hour series.</div>
            <div id="detailBody" class="hidden">
                <div class="chart-container">
                    <canvas id="seriesChart"></canvas>
                </div>
                <div class="card-title" style="margin-top:20px">Sensor fleet</div>
                <div class="card-hint">Current value per sensor. Click a sensor to chart its own series.</div>
                <div class="chart-container short">
                    <canvas id="fleetChart"></canvas>
                </div>
            </div>
        </div>
    </div>

    <script>
        const statusColors = {
            Good: '#22c55e',
            Concern: '#f59e0b',
            Malfunction: '#ef4444'
        };

        let specs = {};
        let lastReadings = [];
        let selected = null;
        let barChart = null;
        let seriesChart = null;
        let fleetChart = null;
        let pollTimer = null;

        const axisColor = '#94a3b8';
        const gridColor = 'rgba(148, 163, 184, 0.15)';

        function baseScales(unit, min, max) {
            return {
                x: {
                    grid: { color: gridColor },
                    ticks: { color: axisColor, maxRotation: 0, autoSkip: true }
                },
                y: {
                    min: min,
                    max: max,
                    grid: { color: gridColor },
                    ticks: { color: axisColor },
                    title: { display: !!unit, text: unit, color: axisColor }
                }
            };
        }

        function initCharts() {
            barChart = new Chart(document.getElementById('categoryChart'), {
                type: 'bar',
                data: { labels: [], datasets: [{ data: [], backgroundColor: [] }] },
                options: {
                    responsive: true,
                    maintainAspectRatio: false,
                    animation: false,
                    plugins: {
                        legend: { display: false },
                        tooltip: {
                            callbacks: {
                                label: function(ctx) {
                                    const r = lastReadings[ctx.dataIndex];
                                    return r.value.toFixed(2) + ' ' + r.unit + ' (' + r.status + ')';
                                }
                            }
                        }
                    },
                    onClick: handleBarClick,
                    scales: baseScales('', undefined, undefined)
                }
            });

            seriesChart = new Chart(document.getElementById('seriesChart'), {
                type: 'line',
                data: { labels: [], datasets: [{ data: [], borderColor: '#38bdf8', backgroundColor: 'rgba(56, 189, 248, 0.15)', pointBackgroundColor: [], pointRadius: 3, tension: 0.25, fill: true }] },
                options: {
                    responsive: true,
                    maintainAspectRatio: false,
                    animation: false,
                    plugins: {
                        legend: { display: false },
                        tooltip: {
                            callbacks: {
                                label: function(ctx) {
                                    const p = ctx.dataset.points[ctx.dataIndex];
                                    let text = p.value.toFixed(2) + ' (' + p.status + ')';
                                    if (p.type) {
                                        text += ' [' + p.type + ']';
                                    }
                                    return text;
                                }
                            }
                        }
                    },
                    scales: baseScales('', undefined, undefined)
                }
            });

            fleetChart = new Chart(document.getElementById('fleetChart'), {
                type: 'bar',
                data: { labels: [], datasets: [{ data: [], backgroundColor: [] }] },
                options: {
                    responsive: true,
                    maintainAspectRatio: false,
                    animation: false,
                    plugins: { legend: { display: false } },
                    onClick: handleFleetClick,
                    scales: baseScales('', undefined, undefined)
                }
            });
        }

        async function loadCatalog() {
            const res = await fetch('/api/catalog');
            const body = await res.json();
            body.categories.forEach(function(s) { specs[s.category] = s; });
        }

        function renderBars(payload) {
            lastReadings = payload.readings;
            barChart.data.labels = payload.readings.map(function(r) { return r.label; });
            barChart.data.datasets[0].data = payload.readings.map(function(r) { return r.value; });
            barChart.data.datasets[0].backgroundColor = payload.readings.map(function(r) { return statusColors[r.status] || '#64748b'; });
            barChart.update('none');
        }

        async function refreshBars() {
            try {
                const res = await fetch('/api/readings/current');
                if (res.ok) {
                    renderBars(await res.json());
                }
            } catch (err) {
                console.error('refresh failed', err);
            }
        }

        function setFeedMode(mode) {
            const el = document.getElementById('feedMode');
            el.className = 'feed-mode ' + mode;
            document.getElementById('feedModeText').textContent = mode;
        }

        function startPolling() {
            if (pollTimer) {
                return;
            }
            setFeedMode('polling');
            refreshBars();
            pollTimer = setInterval(refreshBars, 1000);
        }

        function connectLive() {
            const proto = location.protocol === 'https:' ? 'wss' : 'ws';
            let opened = false;
            const ws = new WebSocket(proto + '://' + location.host + '/api/live');
            ws.onopen = function() {
                opened = true;
                setFeedMode('live');
                if (pollTimer) {
                    clearInterval(pollTimer);
                    pollTimer = null;
                }
            };
            ws.onmessage = function(evt) {
                renderBars(JSON.parse(evt.data));
            };
            ws.onclose = function() {
                startPolling();
                if (opened) {
                    setTimeout(connectLive, 5000);
                }
            };
            ws.onerror = function() {
                ws.close();
            };
        }

        function handleBarClick(evt, elements) {
            if (!elements.length) {
                return;
            }
            const reading = lastReadings[elements[0].index];
            if (reading) {
                selectCategory(reading.category);
            }
        }

        function handleFleetClick(evt, elements) {
            if (!elements.length || !selected) {
                return;
            }
            selected.sensorId = elements[0].index;
            loadSeries();
            updateDetailTitle();
        }

        function updateDetailTitle() {
            const spec = specs[selected.category];
            let title = spec.label + ': last 24 hours';
            if (selected.sensorId !== null) {
                title = spec.label + ' sensor ' + selected.sensorId + ': last 24 hours';
            }
            document.getElementById('detailTitle').textContent = title;
            document.getElementById('detailHint').textContent = 'Hourly readings in ' + spec.unit + '.';
        }

        async function selectCategory(category) {
            selected = { category: category, sensorId: null };
            document.getElementById('detailPlaceholder').classList.add('hidden');
            document.getElementById('detailBody').classList.remove('hidden');
            updateDetailTitle();
            await Promise.all([loadSeries(), loadFleet()]);
        }

        function fmtTime(iso) {
            return new Date(iso).toLocaleTimeString([], { hour: '2-digit', minute: '2-digit' });
        }

        async function loadSeries() {
            const spec = specs[selected.category];
            let url = '/api/categories/' + selected.category + '/series';
            if (selected.sensorId !== null) {
                url = '/api/categories/' + selected.category + '/sensors/' + selected.sensorId + '/series';
            }
            const res = await fetch(url);
            if (!res.ok) {
                console.error('series request failed', res.status);
                return;
            }
            const body = await res.json();
            seriesChart.data.labels = body.points.map(function(p) { return fmtTime(p.time); });
            seriesChart.data.datasets[0].data = body.points.map(function(p) { return p.value; });
            seriesChart.data.datasets[0].pointBackgroundColor = body.points.map(function(p) { return statusColors[p.status] || '#64748b'; });
            seriesChart.data.datasets[0].points = body.points;
            seriesChart.options.scales = baseScales(spec.unit, spec.range.min, spec.range.max);
            seriesChart.update('none');
        }

        async function loadFleet() {
            const spec = specs[selected.category];
            const res = await fetch('/api/categories/' + selected.category + '/fleet');
            if (!res.ok) {
                console.error('fleet request failed', res.status);
                return;
            }
            const body = await res.json();
            fleetChart.data.labels = body.sensors.map(function(s) { return 'Sensor ' + s.sensorId; });
            fleetChart.data.datasets[0].data = body.sensors.map(function(s) { return s.value; });
            fleetChart.data.datasets[0].backgroundColor = body.sensors.map(function(s) { return statusColors[s.status] || '#64748b'; });
            fleetChart.options.scales = baseScales(spec.unit, spec.range.min, spec.range.max);
            fleetChart.update('none');
        }

        async function boot() {
            initCharts();
            await loadCatalog();
            await refreshBars();
            connectLive();
        }

        boot();
    </script>
</body>
</html>
`
