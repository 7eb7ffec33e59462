package registry

// offsetColors gives every offset band on the map a distinct color.
var offsetColors = map[string]string{
	"UTC-12":    "#6366f1",
	"UTC-11":    "#7c83f7",
	"UTC-10":    "#8b5cf6",
	"UTC-9:30":  "#9775e0",
	"UTC-9":     "#a78bfa",
	"UTC-8":     "#c084fc",
	"UTC-7":     "#d946ef",
	"UTC-6":     "#e879f9",
	"UTC-5":     "#f472b6",
	"UTC-4":     "#fb7185",
	"UTC-3:30":  "#f45f5f",
	"UTC-3":     "#f87171",
	"UTC-2":     "#fb923c",
	"UTC-1":     "#fbbf24",
	"UTC+0":     "#facc15",
	"UTC+1":     "#a3e635",
	"UTC+2":     "#4ade80",
	"UTC+3":     "#34d399",
	"UTC+3:30":  "#2dd4bf",
	"UTC+4":     "#22d3ee",
	"UTC+4:30":  "#06b6d4",
	"UTC+5":     "#38bdf8",
	"UTC+5:30":  "#0ea5e9",
	"UTC+5:45":  "#0284c7",
	"UTC+6":     "#60a5fa",
	"UTC+6:30":  "#3b82f6",
	"UTC+7":     "#818cf8",
	"UTC+8":     "#6d28d9",
	"UTC+8:45":  "#7e2bd0",
	"UTC+9":     "#9333ea",
	"UTC+9:30":  "#a855f7",
	"UTC+10":    "#c026d3",
	"UTC+10:30": "#d4219e",
	"UTC+11":    "#db2777",
	"UTC+12":    "#e11d48",
	"UTC+13":    "#dc2626",
	"UTC+13:45": "#b91c1c",
	"UTC+14":    "#991b1b",
}
