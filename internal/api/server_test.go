package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gpumock/internal/api"
	"gpumock/internal/config"
	"gpumock/internal/inventory"
	"gpumock/internal/logging"
	"gpumock/internal/mocknvml"
	"gpumock/internal/session"
)

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

var _ = Describe("Server", func() {
	var (
		lib    *mocknvml.Library
		router http.Handler
		logs   *bytes.Buffer
	)

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder, v interface{}) {
		ExpectWithOffset(1, json.Unmarshal(w.Body.Bytes(), v)).To(Succeed())
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		logs = &bytes.Buffer{}
		logger := logging.NewWriterLogger(logs, logging.LevelDebug, logging.FormatJSON)
		lib = mocknvml.New(mocknvml.WithSession(session.New()))
		router = api.NewServer(lib, config.DefaultConfig().Server, logger).Handler()
	})

	AfterEach(func() {
		Expect(lib.Session().Active()).To(BeFalse(), "requests must not leak sessions")
	})

	It("should report health", func() {
		w := get("/healthz")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
	})

	It("should serve the system identity", func() {
		w := get("/v1/system")
		Expect(w.Code).To(Equal(http.StatusOK))

		var sys inventory.System
		decode(w, &sys)
		Expect(sys.DriverVersion).To(Equal("550.54.15"))
		Expect(sys.CUDAVersion).To(Equal("12.4"))
		Expect(sys.DeviceCount).To(Equal(8))
		Expect(sys.Fingerprint).To(Equal(lib.Table().Fingerprint()))
	})

	It("should list every device", func() {
		w := get("/v1/devices")
		Expect(w.Code).To(Equal(http.StatusOK))

		var body struct {
			Devices []inventory.Device `json:"devices"`
		}
		decode(w, &body)
		Expect(body.Devices).To(HaveLen(8))
		Expect(body.Devices[4].BusID).To(Equal("00000000:04:00.0"))
	})

	Describe("single device", func() {
		It("should serve a known index", func() {
			w := get("/v1/devices/3")
			Expect(w.Code).To(Equal(http.StatusOK))

			var dev inventory.Device
			decode(w, &dev)
			Expect(dev.Index).To(Equal(3))
			Expect(dev.UUID).To(HavePrefix("GPU-"))
			Expect(dev.Links).To(HaveLen(12))
		})

		It("should return 404 past the last device", func() {
			w := get("/v1/devices/8")
			Expect(w.Code).To(Equal(http.StatusNotFound))

			var body apiError
			decode(w, &body)
			Expect(body.Error.Type).To(Equal("not_found"))
			Expect(body.Error.Message).To(ContainSubstring("A supplied argument is invalid"))
		})

		It("should reject a malformed index", func() {
			for _, path := range []string{"/v1/devices/abc", "/v1/devices/-1"} {
				w := get(path)
				Expect(w.Code).To(Equal(http.StatusBadRequest), path)
			}
		})
	})

	It("should walk the NVLinks of a device", func() {
		w := get("/v1/devices/0/nvlink")
		Expect(w.Code).To(Equal(http.StatusOK))

		var body struct {
			Index int              `json:"index"`
			Links []inventory.Link `json:"links"`
		}
		decode(w, &body)
		Expect(body.Links).To(HaveLen(12))
		Expect(body.Links[0].RemoteBusID).To(Equal("00000000:01:00.0"))
		Expect(body.Links[11].RemoteIndex).To(Equal(6))

		Expect(get("/v1/devices/9/nvlink").Code).To(Equal(http.StatusNotFound))
	})

	It("should render the topology matrix", func() {
		w := get("/v1/topology")
		Expect(w.Code).To(Equal(http.StatusOK))

		var body struct {
			Matrix [][]string `json:"matrix"`
		}
		decode(w, &body)
		Expect(body.Matrix).To(HaveLen(8))
		Expect(body.Matrix[0][0]).To(Equal("X"))
		Expect(body.Matrix[0][1]).To(Equal("NV2"))
		Expect(body.Matrix[0][7]).To(Equal("SYS"))
	})

	It("should export Prometheus metrics", func() {
		w := get("/metrics")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`gpumock_device_info{bus_id="00000000:00:00.0",gpu="0"`))
		Expect(w.Body.String()).To(ContainSubstring("gpumock_device_nvlink_active_links"))
	})

	It("should log each request", func() {
		get("/v1/system")
		Expect(logs.String()).To(ContainSubstring(`"type":"api.request"`))
		Expect(logs.String()).To(ContainSubstring(`"path":"/v1/system"`))
	})

	It("should keep serving while a client holds the session", func() {
		Expect(lib.Init()).To(Equal(nvml.SUCCESS))
		Expect(get("/v1/system").Code).To(Equal(http.StatusOK))
		Expect(lib.Session().Active()).To(BeTrue())
		lib.Shutdown()
	})
})

var _ = Describe("Server.Run", func() {
	It("should stop when the context is cancelled", func() {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).NotTo(HaveOccurred())
		addr := listener.Addr().String()
		Expect(listener.Close()).To(Succeed())

		cfg := config.ServerConfig{Listen: addr, ReadTimeoutSeconds: 1}
		srv := api.NewServer(mocknvml.New(mocknvml.WithSession(session.New())), cfg, nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- srv.Run(ctx) }()

		Eventually(func() error {
			resp, err := http.Get("http://" + addr + "/healthz")
			if err != nil {
				return err
			}
			return resp.Body.Close()
		}, 5*time.Second, 20*time.Millisecond).Should(Succeed())

		cancel()
		Eventually(done, 5*time.Second).Should(Receive(BeNil()))
	})
})
