package salesforce_test

import (
	"context"
	"fmt"
	"net/http"

	. "github.com/hotglue/target-salesforce/salesforce"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Login", func() {
	var (
		loginServer    *ghttp.Server
		instanceServer *ghttp.Server
		creds          Credentials
		tokenRequests  int
	)

	BeforeEach(func() {
		tokenRequests = 0
		loginServer = ghttp.NewServer()
		instanceServer = ghttp.NewServer()

		loginServer.RouteToHandler(http.MethodPost, TokenPath, func(w http.ResponseWriter, req *http.Request) {
			tokenRequests++
			Expect(req.ParseForm()).To(Succeed())
			Expect(req.PostForm.Get("grant_type")).To(Equal("refresh_token"))
			Expect(req.PostForm.Get("refresh_token")).To(Equal("best-refresh-token"))
			Expect(req.PostForm.Get("client_id")).To(Equal("best-client-id"))
			Expect(req.PostForm.Get("client_secret")).To(Equal("best-client-secret"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(fmt.Sprintf(`{
				"access_token": "some-access-token",
				"token_type": "Bearer",
				"instance_url": "%s/"
			}`, instanceServer.URL())))
		})

		creds = Credentials{
			LoginURL:     loginServer.URL(),
			ClientID:     "best-client-id",
			ClientSecret: "best-client-secret",
			RefreshToken: "best-refresh-token",
		}
	})

	AfterEach(func() {
		loginServer.Close()
		instanceServer.Close()
	})

	It("exchanges the refresh token for a session bound to the instance url", func() {
		instanceServer.RouteToHandler(http.MethodGet, "/some/path", func(w http.ResponseWriter, req *http.Request) {
			Expect(req.Header.Get("Authorization")).To(Equal("Bearer some-access-token"))
			w.WriteHeader(http.StatusNoContent)
		})

		session, err := Login(context.Background(), http.DefaultClient, creds)
		Expect(err).NotTo(HaveOccurred())
		Expect(session.InstanceURL).To(Equal(instanceServer.URL()))

		resp, err := session.HTTPClient.Get(instanceServer.URL() + "/some/path")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))

		resp, err = session.HTTPClient.Get(instanceServer.URL() + "/some/path")
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusNoContent))
		Expect(tokenRequests).To(Equal(1))
	})

	It("returns an error when the token endpoint rejects the refresh token", func() {
		loginServer.RouteToHandler(http.MethodPost, TokenPath, ghttp.RespondWith(
			http.StatusBadRequest,
			`{"error":"invalid_grant","error_description":"expired access/refresh token"}`,
			http.Header{"Content-Type": []string{"application/json"}},
		))

		_, err := Login(context.Background(), http.DefaultClient, creds)
		Expect(err).To(MatchError(ContainSubstring(AuthenticationFailureMessage)))
		Expect(err).To(MatchError(ContainSubstring("invalid_grant")))
	})

	It("returns an error when the token response has no instance url", func() {
		loginServer.RouteToHandler(http.MethodPost, TokenPath, ghttp.RespondWith(
			http.StatusOK,
			`{"access_token":"some-access-token","token_type":"Bearer"}`,
			http.Header{"Content-Type": []string{"application/json"}},
		))

		_, err := Login(context.Background(), http.DefaultClient, creds)
		Expect(err).To(MatchError(ContainSubstring(MissingInstanceURLMessage)))
	})

	Describe("LoginURL", func() {
		It("uses the sandbox host for sandbox orgs", func() {
			Expect(LoginURL(true)).To(Equal(SandboxLoginURL))
			Expect(LoginURL(false)).To(Equal(ProductionLoginURL))
		})
	})
})
