// Package monitoring turns a kitchen into a web server so that orders can be
// placed and inspected over HTTP.
package monitoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"
	"github.com/syifan/goseth"

	"github.com/sarchlab/burger/kitchen"
)

// Monitor serves a kitchen over HTTP.
type Monitor struct {
	kitchen     *kitchen.Kitchen
	portNumber  int
	openBrowser bool
	logger      *log.Logger

	server          *http.Server
	listener        net.Listener
	shutdownTimeout time.Duration
}

// NewMonitor creates a new Monitor
func NewMonitor() *Monitor {
	return &Monitor{
		logger:          log.New(os.Stderr, "", log.LstdFlags),
		shutdownTimeout: 15 * time.Second,
	}
}

// WithPortNumber sets the port number of the monitor. Port 0 picks a random
// port.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber != 0 && portNumber < 1000 {
		m.logger.Printf(
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.", portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowser sets if a browser is opened once the server is up.
func (m *Monitor) WithBrowser(open bool) *Monitor {
	m.openBrowser = open
	return m
}

// WithLogger sets where the monitor reports its own activity.
func (m *Monitor) WithLogger(logger *log.Logger) *Monitor {
	m.logger = logger
	return m
}

// RegisterKitchen registers the kitchen that takes the orders.
func (m *Monitor) RegisterKitchen(k *kitchen.Kitchen) {
	m.kitchen = k
}

// Router returns the handler of all the monitor endpoints.
func (m *Monitor) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/burger", m.prepareFromQuery).Methods(http.MethodGet)
	r.HandleFunc("/api/orders", m.prepareFromBody).Methods(http.MethodPost)
	r.HandleFunc("/api/orders", m.listOrders).Methods(http.MethodGet)
	r.HandleFunc("/api/kitchen", m.kitchenDetails).Methods(http.MethodGet)
	r.HandleFunc("/api/resource", m.listResources).Methods(http.MethodGet)
	r.HandleFunc("/api/profile", m.collectProfile).Methods(http.MethodGet)

	return r
}

// StartServer starts the monitor as a web server and returns the URL that it
// listens on.
func (m *Monitor) StartServer() (string, error) {
	actualPort := ":0"
	if m.portNumber >= 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	if err != nil {
		return "", err
	}

	m.listener = listener
	m.server = &http.Server{
		Handler:      m.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	m.logger.Printf("Monitoring kitchen with %s", url)

	go func() {
		err := m.server.Serve(listener)
		if err != nil && err != http.ErrServerClosed {
			m.logger.Printf("monitoring server stopped: %v", err)
		}
	}()

	if m.openBrowser {
		if err := browser.OpenURL(url + "/api/orders"); err != nil {
			m.logger.Printf("failed to open browser: %v", err)
		}
	}

	return url, nil
}

// WithShutdownTimeout sets how long StopServer waits for the orders that are
// being prepared.
func (m *Monitor) WithShutdownTimeout(d time.Duration) *Monitor {
	m.shutdownTimeout = d
	return m
}

// StopServer stops accepting requests and waits for the running ones to
// finish. The server is closed forcefully once the shutdown timeout expires.
func (m *Monitor) StopServer() error {
	if m.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), m.shutdownTimeout)
	defer cancel()

	err := m.server.Shutdown(ctx)
	if err != nil {
		_ = m.server.Close()
	}

	return err
}

type ticketRsp struct {
	ID          string `json:"id"`
	Bread       string `json:"bread"`
	Patty       string `json:"patty"`
	Cheese      bool   `json:"cheese"`
	Lettuce     bool   `json:"lettuce"`
	Description string `json:"description"`
}

func makeTicketRsp(t kitchen.Ticket) ticketRsp {
	return ticketRsp{
		ID:          t.ID,
		Bread:       t.Burger.Bread(),
		Patty:       t.Burger.Patty(),
		Cheese:      t.Burger.HasCheese(),
		Lettuce:     t.Burger.HasLettuce(),
		Description: t.Burger.String(),
	}
}

func (m *Monitor) prepareFromQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	order := kitchen.Order{
		Bread: q.Get("bread"),
		Patty: q.Get("patty"),
	}

	var err error

	order.Cheese, err = parseBoolParam(q.Get("cheese"))
	if err != nil {
		http.Error(w, "cheese: "+err.Error(), http.StatusBadRequest)
		return
	}

	order.Lettuce, err = parseBoolParam(q.Get("lettuce"))
	if err != nil {
		http.Error(w, "lettuce: "+err.Error(), http.StatusBadRequest)
		return
	}

	m.prepare(w, order)
}

func parseBoolParam(v string) (bool, error) {
	if v == "" {
		return false, nil
	}

	return strconv.ParseBool(v)
}

func (m *Monitor) prepareFromBody(w http.ResponseWriter, r *http.Request) {
	var order kitchen.Order

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&order); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.prepare(w, order)
}

func (m *Monitor) prepare(w http.ResponseWriter, order kitchen.Order) {
	if !m.kitchenOr404(w) {
		return
	}

	ticket := m.kitchen.Prepare(order)

	m.writeJSON(w, makeTicketRsp(ticket))
}

func (m *Monitor) listOrders(w http.ResponseWriter, _ *http.Request) {
	if !m.kitchenOr404(w) {
		return
	}

	served := m.kitchen.Served()

	rsp := make([]ticketRsp, 0, len(served))
	for _, t := range served {
		rsp = append(rsp, makeTicketRsp(t))
	}

	m.writeJSON(w, rsp)
}

func (m *Monitor) kitchenDetails(w http.ResponseWriter, _ *http.Request) {
	if !m.kitchenOr404(w) {
		return
	}

	serializer := goseth.NewSerializer()
	serializer.SetRoot(m.kitchen)
	serializer.SetMaxDepth(1)

	err := serializer.Serialize(w)
	dieOnErr(err)
}

func (m *Monitor) kitchenOr404(w http.ResponseWriter) bool {
	if m.kitchen != nil {
		return true
	}

	http.Error(w, "Kitchen not found", http.StatusNotFound)

	return false
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	process, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := process.CPUPercent()
	dieOnErr(err)

	memorySize, err := process.MemoryInfo()
	dieOnErr(err)

	m.writeJSON(w, resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	})
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	m.writeJSON(w, prof)
}

func (m *Monitor) writeJSON(w http.ResponseWriter, v any) {
	bytes, err := json.Marshal(v)
	dieOnErr(err)

	w.Header().Set("Content-Type", "application/json")

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
