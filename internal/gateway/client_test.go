package gateway_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/dorm-management/internal/gateway"
)

func TestGateway(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gateway Client Suite")
}

var _ = Describe("Client", func() {
	var (
		server   *httptest.Server
		client   *gateway.Client
		response map[string]string
		status   int
		lastReq  *http.Request
	)

	params := func() map[string]string {
		return map[string]string{"val_id": "VAL-1"}
	}

	BeforeEach(func() {
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		status = http.StatusOK
		response = map[string]string{
			"status":   "VALID",
			"tran_id":  "TXN-1",
			"amount":   "8500.00",
			"currency": "BDT",
		}

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastReq = r
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(response)
		}))

		client = gateway.NewClient(gateway.Config{
			StoreID:       "teststore",
			StorePassword: "testpass",
			BaseURL:       server.URL,
			Timeout:       2 * time.Second,
		}, logger)
	})

	AfterEach(func() {
		server.Close()
	})

	It("validates a transaction the gateway confirms", func() {
		ok := client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())

		Expect(ok).To(BeTrue())
		Expect(lastReq.URL.Path).To(Equal("/validator/api/validationserverAPI.php"))
		query := lastReq.URL.Query()
		Expect(query.Get("val_id")).To(Equal("VAL-1"))
		Expect(query.Get("store_id")).To(Equal("teststore"))
		Expect(query.Get("store_passwd")).To(Equal("testpass"))
		Expect(query.Get("format")).To(Equal("json"))
	})

	It("accepts the VALIDATED status", func() {
		response["status"] = "VALIDATED"

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeTrue())
	})

	It("accepts amounts that differ only in string form", func() {
		response["amount"] = "8500"

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeTrue())
	})

	It("rejects without network traffic when required parameters are missing", func() {
		lastReq = nil

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", map[string]string{})).To(BeFalse())
		Expect(client.Validate(context.Background(), "", "8500.00", "BDT", params())).To(BeFalse())
		Expect(client.Validate(context.Background(), "TXN-1", "", "BDT", params())).To(BeFalse())
		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "", params())).To(BeFalse())
		Expect(lastReq).To(BeNil())
	})

	It("rejects when the gateway reports an invalid status", func() {
		response["status"] = "INVALID_TRANSACTION"

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeFalse())
	})

	It("rejects a transaction id mismatch", func() {
		response["tran_id"] = "TXN-OTHER"

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeFalse())
	})

	It("rejects an amount mismatch", func() {
		response["amount"] = "1.00"

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeFalse())
	})

	It("rejects a currency mismatch", func() {
		response["currency"] = "USD"

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeFalse())
	})

	It("rejects on a non-200 gateway response", func() {
		status = http.StatusInternalServerError

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeFalse())
	})

	It("rejects when the gateway is unreachable", func() {
		server.Close()

		Expect(client.Validate(context.Background(), "TXN-1", "8500.00", "BDT", params())).To(BeFalse())
	})
})
