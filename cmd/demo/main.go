// Command demo is a small CLI against a running API server. It keeps a
// local session file so a login carries across invocations, and reads the
// marketplace through the same contract the web frontend uses.
package main

import (
	"flag"

	"github.com/gpushare/market-go/internal/config"
	"github.com/gpushare/market-go/internal/restclient"
	"github.com/gpushare/market-go/internal/session"
	log "github.com/sirupsen/logrus"
)

func main() {
	config.LoadConfig()

	base := flag.String("base", "", "API base URL (default from API_BASE)")
	login := flag.String("login", "", "log in with this phone number")
	code := flag.String("code", config.DemoLoginCode, "verification code for login")
	logout := flag.Bool("logout", false, "drop the local session")
	flag.Parse()

	sessions := session.NewManager(config.SessionPath)
	sessions.Subscribe(func(s *session.Session) {
		if s == nil {
			log.Info("Logged out")
			return
		}
		log.Infof("Session active for %s (%s)", s.Username, s.Role)
	})

	client := restclient.New(*base)

	switch {
	case *logout:
		if err := sessions.Clear(); err != nil {
			log.Fatalf("Failed to clear session: %v", err)
		}
	case *login != "":
		doLogin(client, sessions, *login, *code)
	default:
		showMarketplace(client, sessions)
	}
}

func doLogin(client *restclient.Client, sessions *session.Manager, phone, code string) {
	tr, err := client.Login(phone, code)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	if err := sessions.Set(session.Session{
		ProfileID: tr.Profile.ID,
		UserID:    tr.Profile.UserID,
		Phone:     tr.Profile.Phone,
		Username:  tr.Profile.Username,
		Role:      string(tr.Profile.Role),
		Token:     tr.Token,
	}); err != nil {
		log.Fatalf("Failed to persist session: %v", err)
	}
}

func showMarketplace(client *restclient.Client, sessions *session.Manager) {
	s := sessions.Current()
	if s == nil {
		log.Fatal("No session; run with -login <phone> first")
	}
	api := client.WithToken(s.Token).API()

	gpus, err := api.Gpu.AvailableGpus()
	if err != nil {
		log.Fatalf("Failed to list available GPUs: %v", err)
	}
	log.Infof("Shared pool: %d device(s)", len(gpus))
	for _, g := range gpus {
		log.Infof("  %-12s %3dGB score=%.0f", g.GpuName, g.GpuMemory, g.PerformanceScore)
	}

	reqs, err := api.Request.AllRequests()
	if err != nil {
		log.Fatalf("Failed to list requests: %v", err)
	}
	log.Infof("Compute requests: %d", len(reqs))
	for _, r := range reqs {
		log.Infof("  [%-9s] %s", r.Status, r.TaskDescription)
	}

	st, err := api.Stats.PlatformStats()
	if err != nil {
		log.Fatalf("Failed to fetch stats: %v", err)
	}
	log.Infof("Stats: users=%d gpus=%d online=%d pending=%d completed=%d",
		st.TotalUsers, st.TotalGpus, st.OnlineGpus, st.PendingRequests, st.CompletedRequests)
}
