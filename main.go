package main

import (
	"context"
	"log"
	"net/http"

	"lifeos/dashboard/config"
	"lifeos/dashboard/handlers"
	"lifeos/dashboard/lifeos"
	"lifeos/dashboard/middleware"
	"lifeos/dashboard/notify"
	"lifeos/dashboard/reminder"
	"lifeos/dashboard/render"
	"lifeos/dashboard/routes"
	"lifeos/dashboard/state"
)

func main() {

	config.InitLogger()
	config.LoadEnv()
	settings := config.LoadSettings()

	catalog, err := config.LoadOrCreateCatalog(settings.ContextsFile)
	if err != nil {
		config.Logger.Warn("Failed to load context catalog, using defaults:", err)
	}

	renderer, err := render.New(catalog)
	if err != nil {
		log.Fatal(err)
	}

	client := lifeos.New(settings.BackendURL)
	store := state.NewStore()
	controller := state.NewController(store, client, settings.RefreshInterval)

	hub := notify.NewHub()
	permissions := notify.NewPermissions()

	// Dismissing a time check refreshes the dashboard data and tells the
	// page to redraw.
	scheduler := reminder.NewScheduler(settings.ReminderInterval, client, hub, permissions, func(ctx context.Context) {
		controller.LoadTasks(ctx)
		hub.Broadcast(notify.EventRefresh, map[string]string{"tab": render.TabDashboard})
	})

	h := handlers.New(store, controller, client, renderer, scheduler, hub, permissions)

	// Warm the snapshot; a failed first fetch still serves empty views.
	controller.SwitchTab(context.Background(), state.TabDashboard)

	go controller.Run(context.Background())
	scheduler.Start()
	defer scheduler.Stop()

	mux := http.NewServeMux()
	routes.RegisterAllRoutes(mux, h)

	handler := middleware.Chain(
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
	)(mux)

	config.Logger.Info("LifeOS dashboard listening on ", settings.Addr,
		", backend ", settings.BackendURL)
	log.Fatal(http.ListenAndServe(settings.Addr, handler))
}
