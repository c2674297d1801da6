package chart

import (
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sync"
)

// HTMLSurface writes each chart as a standalone Chart.js page at Path.
type HTMLSurface struct {
	Path string
}

// HTMLChart is a chart page on disk.
type HTMLChart struct {
	once sync.Once
	path string
}

// Path returns the file the chart was written to.
func (h *HTMLChart) Path() string {
	return h.path
}

// Destroy removes the page.
func (h *HTMLChart) Destroy() {
	h.once.Do(func() {
		_ = os.Remove(h.path)
	})
}

type jsDataset struct {
	Label            string     `json:"label"`
	Data             []*float64 `json:"data"`
	BorderColor      string     `json:"borderColor"`
	FillTop          string     `json:"fillTop"`
	FillBottom       string     `json:"fillBottom"`
	BorderWidth      int        `json:"borderWidth"`
	BorderDash       []int      `json:"borderDash,omitempty"`
	PointRadius      int        `json:"pointRadius"`
	PointHoverRadius int        `json:"pointHoverRadius"`
	Tension          float64    `json:"tension"`
}

type jsChart struct {
	Labels          []string    `json:"labels"`
	Datasets        []jsDataset `json:"datasets"`
	InteractionMode string      `json:"interactionMode"`
	Intersect       bool        `json:"intersect"`
	LegendDisplay   bool        `json:"legendDisplay"`
	LegendPosition  string      `json:"legendPosition"`
	MaxXTicks       int         `json:"maxXTicks"`
}

func newJSChart(cfg Config) jsChart {
	chartData := jsChart{
		Labels:          cfg.Labels,
		InteractionMode: cfg.Options.InteractionMode,
		Intersect:       cfg.Options.Intersect,
		LegendDisplay:   cfg.Options.LegendDisplay,
		LegendPosition:  cfg.Options.LegendPosition,
		MaxXTicks:       cfg.Options.MaxXTicks,
	}
	for _, ds := range cfg.Datasets {
		data := make([]*float64, len(ds.Values))
		for i, v := range ds.Values {
			if v.Valid {
				f, _ := v.Decimal.Float64()
				data[i] = &f
			}
		}
		chartData.Datasets = append(chartData.Datasets, jsDataset{
			Label:            ds.Label,
			Data:             data,
			BorderColor:      ds.Color.Hex(),
			FillTop:          ds.Fill.Top.CSS(),
			FillBottom:       ds.Fill.Bottom.CSS(),
			BorderWidth:      ds.BorderWidth,
			BorderDash:       ds.BorderDash,
			PointRadius:      ds.PointRadius,
			PointHoverRadius: ds.PointHoverRadius,
			Tension:          ds.Tension,
		})
	}
	return chartData
}

var pageTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<style>
body { background: #0f172a; color: #f1f5f9; font-family: Inter, sans-serif; margin: 2rem; }
.chart-container { position: relative; height: 400px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<div class="chart-container"><canvas id="predictionChart"></canvas></div>
<script>
const chartData = {{.Chart}};
const ctx = document.getElementById('predictionChart').getContext('2d');
const currency = (v) => '$' + Number(v).toLocaleString('en-US', { minimumFractionDigits: 2, maximumFractionDigits: 2 });
const datasets = chartData.datasets.map((ds) => {
  const gradient = ctx.createLinearGradient(0, 0, 0, 400);
  gradient.addColorStop(0, ds.fillTop);
  gradient.addColorStop(1, ds.fillBottom);
  return {
    label: ds.label,
    data: ds.data,
    borderColor: ds.borderColor,
    backgroundColor: gradient,
    borderWidth: ds.borderWidth,
    borderDash: ds.borderDash || [],
    pointRadius: ds.pointRadius,
    pointHoverRadius: ds.pointHoverRadius,
    fill: true,
    tension: ds.tension,
  };
});
new Chart(ctx, {
  type: 'line',
  data: { labels: chartData.labels, datasets: datasets },
  options: {
    responsive: true,
    maintainAspectRatio: false,
    interaction: { mode: chartData.interactionMode, intersect: chartData.intersect },
    plugins: {
      legend: { display: chartData.legendDisplay, position: chartData.legendPosition, labels: { color: '#f1f5f9' } },
      tooltip: {
        callbacks: {
          label: (context) => {
            let label = context.dataset.label || '';
            if (label) { label += ': '; }
            if (context.parsed.y !== null) { label += currency(context.parsed.y); }
            return label;
          },
        },
      },
    },
    scales: {
      x: { grid: { color: '#334155' }, ticks: { color: '#94a3b8', maxTicksLimit: chartData.maxXTicks } },
      y: { grid: { color: '#334155' }, ticks: { color: '#94a3b8', callback: (value) => currency(value) } },
    },
  },
});
</script>
</body>
</html>
`))

// NewChart implements Surface.
func (s HTMLSurface) NewChart(cfg Config) (Instance, error) {
	if s.Path == "" {
		return nil, errors.New("html surface: empty output path")
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("html surface: %w", err)
		}
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return nil, fmt.Errorf("html surface: %w", err)
	}
	defer f.Close()

	data := struct {
		Title string
		Chart jsChart
	}{Title: cfg.Title, Chart: newJSChart(cfg)}
	if err := pageTemplate.Execute(f, data); err != nil {
		return nil, fmt.Errorf("html surface: render page: %w", err)
	}
	return &HTMLChart{path: s.Path}, nil
}
