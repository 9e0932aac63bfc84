package network_test

import (
	"crypto/tls"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/onsi/gomega/ghttp"

	. "github.com/hotglue/target-salesforce/network"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		server *ghttp.Server
	)
	BeforeEach(func() {
		server = ghttp.NewTLSServer()
		server.HTTPTestServer.Config.ErrorLog = log.New(GinkgoWriter, "", 0)
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("Do", func() {
		BeforeEach(func() {
			server.RouteToHandler(http.MethodGet, "/", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
		})

		Context("when skipTLSVerification is set to false", func() {
			It("throws an error for invalid certificates", func() {
				client := NewClient(false, time.Second)

				req, err := http.NewRequest(http.MethodGet, server.URL(), strings.NewReader("request-body"))
				Expect(err).NotTo(HaveOccurred())

				_, err = client.Do(req)
				Expect(err).To(MatchError(ContainSubstring("certificate")))
			})
		})

		Context("when skipTLSVerification is set to true", func() {
			It("does not verify certificates", func() {
				client := NewClient(true, time.Second)

				req, err := http.NewRequest(http.MethodGet, server.URL(), strings.NewReader("request-body"))
				Expect(err).NotTo(HaveOccurred())

				_, err = client.Do(req)
				Expect(err).NotTo(HaveOccurred())
			})
		})
	})

	Describe("Timeout", func() {
		It("uses the default timeout when none is given", func() {
			client := NewClient(true, 0)
			Expect(client.Timeout).To(Equal(DefaultRequestTimeout))
		})

		It("fails requests that take longer than the timeout", func() {
			server.RouteToHandler(http.MethodGet, "/slow", func(w http.ResponseWriter, req *http.Request) {
				time.Sleep(200 * time.Millisecond)
				w.WriteHeader(http.StatusNoContent)
			})
			client := NewClient(true, 50*time.Millisecond)

			req, err := http.NewRequest(http.MethodGet, server.URL()+"/slow", nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = client.Do(req)
			Expect(err).To(MatchError(ContainSubstring("Client.Timeout exceeded")))
		})
	})

	Describe("MinVersion", func() {
		BeforeEach(func() {
			server.HTTPTestServer.TLS.MaxVersion = tls.VersionTLS11
			server.RouteToHandler(http.MethodGet, "/", func(w http.ResponseWriter, req *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
		})

		It("fails requests to servers with a TLS version lower than 1.2", func() {
			client := NewClient(true, time.Second)

			req, err := http.NewRequest(http.MethodGet, server.URL(), strings.NewReader("request-body"))
			Expect(err).NotTo(HaveOccurred())

			_, err = client.Do(req)
			Expect(err).To(MatchError(ContainSubstring("protocol version")))
		})
	})
})
