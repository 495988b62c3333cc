package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ordersSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_orders_submitted_total",
		Help: "Orders submitted to POST /api/orders by response code",
	}, []string{"code"})

	createDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_order_create_duration_seconds",
		Help:    "Latency of POST /api/orders as seen by the client",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2},
	})
)

var catalog = []struct {
	name  string
	price float64
}{
	{"Maize flour 2kg", 210},
	{"Cooking oil 1L", 380},
	{"Sugar 1kg", 190},
	{"Tea leaves 250g", 145.5},
	{"Rice 5kg", 1150},
}

type customerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type item struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

type orderRequest struct {
	CustomerInfo  customerInfo `json:"customerInfo"`
	Items         []item       `json:"items"`
	Total         float64      `json:"total"`
	TransactionID string       `json:"transactionId,omitempty"`
}

func randomOrder(n int) orderRequest {
	req := orderRequest{
		CustomerInfo: customerInfo{
			Name:    fmt.Sprintf("Load Customer %d", n),
			Email:   fmt.Sprintf("load-%d@example.com", n%50),
			Address: fmt.Sprintf("%d Moi Avenue, Nairobi", n%300),
		},
	}
	for range 1 + rand.IntN(3) {
		product := catalog[rand.IntN(len(catalog))]
		quantity := 1 + rand.IntN(4)
		req.Items = append(req.Items, item{Name: product.name, UnitPrice: product.price, Quantity: quantity})
		req.Total += product.price * float64(quantity)
	}
	if rand.IntN(2) == 0 {
		req.TransactionID = fmt.Sprintf("QF%08d", rand.IntN(100_000_000))
	}
	return req
}

func submit(ctx context.Context, client *http.Client, target string, order orderRequest) error {
	body, err := json.Marshal(order)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := client.Do(req)
	createDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		ordersSubmitted.WithLabelValues("error").Inc()
		return err
	}
	defer resp.Body.Close()

	ordersSubmitted.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	target := getenv("TARGET_URL", "http://localhost:8080")
	metricsAddr := getenv("METRICS_ADDR", ":2112")
	interval, err := time.ParseDuration(getenv("INTERVAL", "5s"))
	if err != nil {
		log.Fatalf("invalid INTERVAL: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	metricsServer := &http.Server{
		Addr:              metricsAddr,
		Handler:           promhttp.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("metrics server: %v", err)
		}
	}()

	client := &http.Client{Timeout: 10 * time.Second}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; ; n++ {
		if err := submit(ctx, client, target, randomOrder(n)); err != nil && ctx.Err() == nil {
			log.Printf("submit order: %v", err)
		}

		select {
		case <-ctx.Done():
			_ = metricsServer.Shutdown(context.Background())
			return
		case <-ticker.C:
		}
	}
}
