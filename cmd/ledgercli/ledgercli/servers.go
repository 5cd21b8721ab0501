package ledgercli

import (
	"net/http"
	_ "net/http/pprof" //nolint:gosec // profiler is only started when profilerAddr is set
	"sync"

	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/bsv-blockchain/ledger-validator/ulogger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var serversOnce sync.Once

// startServers starts the profiler and the prometheus endpoint when their addresses are set.
// Both live for the rest of the process.
func startServers(logger ulogger.Logger, tSettings *settings.Settings) {
	serversOnce.Do(func() {
		if profilerAddr := tSettings.ProfilerAddr; profilerAddr != "" {
			go func() {
				logger.Infof("Starting profile on http://%s/debug/pprof", profilerAddr)

				if err := http.ListenAndServe(profilerAddr, nil); err != nil { //nolint:gosec // no timeouts on the profiler
					logger.Errorf("profiler stopped: %v", err)
				}
			}()
		}

		if listenAddress := tSettings.PrometheusListenAddress; listenAddress != "" {
			mux := http.NewServeMux()
			mux.Handle(tSettings.PrometheusEndpoint, promhttp.Handler())

			go func() {
				logger.Infof("Starting prometheus endpoint on http://%s%s", listenAddress, tSettings.PrometheusEndpoint)

				if err := http.ListenAndServe(listenAddress, mux); err != nil { //nolint:gosec // metrics only
					logger.Errorf("prometheus endpoint stopped: %v", err)
				}
			}()
		}
	})
}
