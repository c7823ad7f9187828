package handlers

import "net/http"

// Stylesheet serves the dashboard's minimal styles. The full page design
// is out of scope; this covers the fragments this service renders.
func (h *Handler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write([]byte(stylesheet))
}

const stylesheet = `
body { font-family: system-ui, sans-serif; margin: 0; background: #f8fafc; color: #0f172a; }
.tabs { display: flex; gap: 1rem; padding: 0.75rem 1.5rem; background: #0f172a; }
.tabs a { color: #cbd5e1; text-decoration: none; padding: 0.25rem 0.5rem; }
.tabs a.active { color: #fff; border-bottom: 2px solid #3b82f6; }
main { padding: 1.5rem; max-width: 72rem; margin: 0 auto; }
table { width: 100%; border-collapse: collapse; background: #fff; }
th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #e2e8f0; }
.row-done { opacity: 0.5; text-decoration: line-through; }
.row-blocked { background: #fee2e2; }
.row-overdue { background: #fef2f2; }
.row-due-today { background: #fefce8; }
.badge, .context-badge { border-radius: 9999px; padding: 0.1rem 0.5rem; font-size: 0.8rem; color: #fff; }
.badge { background: #64748b; }
.badge-gabriel { background: #dc2626; }
.priority-critical, .priority-urgent { background: #dc2626; }
.priority-high { background: #ea580c; }
.priority-medium { background: #ca8a04; }
.priority-low { background: #16a34a; }
.stat-cards { display: flex; gap: 1rem; flex-wrap: wrap; margin-bottom: 1.5rem; }
.stat-card { background: #fff; border: 1px solid #e2e8f0; border-radius: 0.5rem; padding: 0.75rem 1.25rem; text-align: center; }
.stat-value { font-size: 1.5rem; font-weight: 700; }
.stat-label { font-size: 0.8rem; color: #64748b; }
.filters { display: flex; gap: 0.75rem; margin-bottom: 1rem; align-items: center; }
.empty-state { padding: 2rem; text-align: center; color: #64748b; background: #fff; }
.next-action { background: #eff6ff; border: 1px solid #bfdbfe; border-radius: 0.5rem; padding: 1rem; margin-bottom: 1.5rem; }
.modal-form { background: #fff; padding: 1.5rem; max-width: 28rem; display: grid; gap: 0.75rem; }
.modal-form label { display: grid; gap: 0.25rem; font-size: 0.9rem; }
.button { background: #3b82f6; color: #fff; border: none; border-radius: 0.375rem; padding: 0.4rem 0.9rem; text-decoration: none; display: inline-block; }
.button-secondary { background: #64748b; }
.button-danger { background: #dc2626; }
.time-check { position: fixed; bottom: 1.5rem; right: 1.5rem; background: #fff; border: 1px solid #e2e8f0; border-radius: 0.5rem; padding: 1rem; box-shadow: 0 10px 25px rgb(0 0 0 / 0.15); }
.time-check button { display: block; width: 100%; margin-top: 0.5rem; color: #fff; border: none; border-radius: 0.375rem; padding: 0.4rem; cursor: pointer; }
.muted { color: #64748b; font-size: 0.85rem; }
.hours { text-align: right; font-variant-numeric: tabular-nums; }
.analytics { display: flex; gap: 2rem; flex-wrap: wrap; }
.analytics-total td { font-weight: 700; border-top: 2px solid #0f172a; }
`
