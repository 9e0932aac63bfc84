package upload_test

import (
	"context"
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/hotglue/target-salesforce/salesforce"
	. "github.com/hotglue/target-salesforce/upload"
)

var _ = Describe("Reconciler", func() {
	var (
		server     *ghttp.Server
		reconciler *Reconciler
		logs       *observer.ObservedLogs
		ctx        context.Context
		account    salesforce.ObjectDescriptor
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		var core zapcore.Core
		core, logs = observer.New(zapcore.DebugLevel)
		reconciler = NewReconciler(newClient(server), zap.New(core))
		ctx = context.Background()

		account = salesforce.ObjectDescriptor{
			Name:  "Account",
			Label: "Account",
			Fields: []salesforce.FieldDescriptor{
				{Name: "Id", Type: "id"},
				{Name: "Name", Type: "string"},
				{Name: "External_Id__c", Type: "string", ExternalID: true},
				{Name: "Legacy_Id__c", Type: "string", ExternalID: true},
				{Name: "ParentId", Type: "reference"},
			},
		}
	})

	AfterEach(func() {
		server.Close()
	})

	Context("when the record carries no external id", func() {
		It("creates the record", func() {
			server.AppendHandlers(ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, dataPath+"/sobjects/Account/"),
				ghttp.VerifyJSON(`{"Name":"Acme"}`),
				ghttp.RespondWith(http.StatusCreated, `{"id":"001","success":true,"errors":[]}`),
			))

			outcome, err := reconciler.Upsert(ctx, account, decodeRecord(`{"Name":"Acme"}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(SubmissionOutcome{Action: ActionCreated, Status: StatusSuccess, HTTPStatus: http.StatusCreated}))
			Expect(logs.FilterLevelExact(zapcore.WarnLevel).Len()).To(Equal(0))
		})
	})

	Context("when an external id matches an existing record", func() {
		It("patches the original record at the matched resource path", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodGet, queryAllPath),
					ghttp.VerifyForm(url.Values{"q": {"SELECT Id FROM Account WHERE External_Id__c = 'A1' AND IsDeleted=false"}}),
					ghttp.RespondWith(http.StatusOK, queryResult("Account", "001")),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodPatch, dataPath+"/sobjects/Account/001"),
					ghttp.VerifyJSON(`{"External_Id__c":"A1","Name":"Acme"}`),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			outcome, err := reconciler.Upsert(ctx, account, decodeRecord(`{"External_Id__c":"A1","Name":"Acme"}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Action).To(Equal(ActionUpdated))
			Expect(outcome.Status).To(Equal(StatusSuccess))
		})

		It("resolves references on a copy for matching but submits them unresolved", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{"q": {"SELECT Id FROM Parent WHERE External_Id__c = 'P1'"}}),
					ghttp.RespondWith(http.StatusOK, queryResult("Account", "00P")),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{"q": {"SELECT Id FROM Account WHERE External_Id__c = 'A1' AND IsDeleted=false"}}),
					ghttp.RespondWith(http.StatusOK, queryResult("Account", "001")),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodPatch, dataPath+"/sobjects/Account/001"),
					ghttp.VerifyJSON(`{"External_Id__c":"A1","ParentId":{"External_Id__c":"P1"}}`),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			rec := decodeRecord(`{"External_Id__c":"A1","ParentId":{"External_Id__c":"P1"}}`)
			outcome, err := reconciler.Upsert(ctx, account, rec)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Action).To(Equal(ActionUpdated))

			parent, _ := rec.Get("ParentId")
			_, _, isReference := parent.Reference()
			Expect(isReference).To(BeTrue())
		})

		It("tries external id fields in field order and stops at the first match", func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{"q": {"SELECT Id FROM Account WHERE External_Id__c = 'A1' AND IsDeleted=false"}}),
					ghttp.RespondWith(http.StatusOK, queryResult("Account")),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyForm(url.Values{"q": {"SELECT Id FROM Account WHERE Legacy_Id__c = 'L1' AND IsDeleted=false"}}),
					ghttp.RespondWith(http.StatusOK, queryResult("Account", "002", "003")),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest(http.MethodPatch, dataPath+"/sobjects/Account/002"),
					ghttp.RespondWith(http.StatusNoContent, nil),
				),
			)

			outcome, err := reconciler.Upsert(ctx, account, decodeRecord(`{"Legacy_Id__c":"L1","External_Id__c":"A1"}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Action).To(Equal(ActionUpdated))
			Expect(server.ReceivedRequests()).To(HaveLen(3))
		})
	})

	It("creates when no external id query matches", func() {
		server.AppendHandlers(
			ghttp.RespondWith(http.StatusOK, queryResult("Account")),
			ghttp.CombineHandlers(
				ghttp.VerifyRequest(http.MethodPost, dataPath+"/sobjects/Account/"),
				ghttp.RespondWith(http.StatusCreated, `{"id":"001"}`),
			),
		)

		outcome, err := reconciler.Upsert(ctx, account, decodeRecord(`{"External_Id__c":"A1"}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome.Action).To(Equal(ActionCreated))
	})

	It("creates once and then updates when the same record is submitted twice", func() {
		var created, updated int
		server.RouteToHandler(http.MethodGet, queryAllPath, func(w http.ResponseWriter, r *http.Request) {
			if created > 0 {
				w.Write([]byte(queryResult("Account", "001")))
				return
			}
			w.Write([]byte(queryResult("Account")))
		})
		server.RouteToHandler(http.MethodPost, dataPath+"/sobjects/Account/", func(w http.ResponseWriter, r *http.Request) {
			created++
			w.WriteHeader(http.StatusCreated)
		})
		server.RouteToHandler(http.MethodPatch, dataPath+"/sobjects/Account/001", func(w http.ResponseWriter, r *http.Request) {
			updated++
			w.WriteHeader(http.StatusNoContent)
		})

		for i := 0; i < 2; i++ {
			_, err := reconciler.Upsert(ctx, account, decodeRecord(`{"External_Id__c":"A1","Name":"Acme"}`))
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(created).To(Equal(1))
		Expect(updated).To(Equal(1))
	})

	It("fails without submitting when a nested reference cannot be resolved", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusOK, queryResult("Account")))

		_, err := reconciler.Upsert(ctx, account, decodeRecord(`{"External_Id__c":"A1","ParentId":{"External_Id__c":"missing"}}`))
		Expect(IsReferenceNotFound(err)).To(BeTrue())
		Expect(server.ReceivedRequests()).To(HaveLen(1))
	})

	Describe("response classification", func() {
		submit := func(status int, body string) SubmissionOutcome {
			server.AppendHandlers(ghttp.RespondWith(status, body))
			outcome, err := reconciler.Upsert(ctx, account, decodeRecord(`{"Name":"Acme"}`))
			Expect(err).NotTo(HaveOccurred())
			return outcome
		}

		It("reports a 404 as object not found and warns", func() {
			outcome := submit(http.StatusNotFound, `[{"message":"The requested resource does not exist","errorCode":"NOT_FOUND"}]`)
			Expect(outcome.Status).To(Equal(StatusObjectNotFound))
			Expect(outcome.HTTPStatus).To(Equal(http.StatusNotFound))
			Expect(logs.FilterMessage("record rejected").Len()).To(Equal(1))
		})

		It("reports a 400 as an invalid payload with the first remote message", func() {
			outcome := submit(http.StatusBadRequest, `[{"message":"Required fields are missing: [Name]","errorCode":"REQUIRED_FIELD_MISSING"},{"message":"second"}]`)
			Expect(outcome.Status).To(Equal(StatusInvalidPayload))
			Expect(outcome.ErrorMessage).To(Equal("Required fields are missing: [Name]"))
			Expect(logs.FilterMessage("record rejected").Len()).To(Equal(1))
		})

		It("reports other failures as a generic invalid payload", func() {
			outcome := submit(http.StatusInternalServerError, `oops`)
			Expect(outcome.Status).To(Equal(StatusInvalidPayload))
			Expect(outcome.ErrorMessage).To(Equal("unexpected status 500"))
		})

		It("reports a 200 as success without warning", func() {
			outcome := submit(http.StatusOK, `{}`)
			Expect(outcome.IsSuccess()).To(BeTrue())
			Expect(outcome.ErrorMessage).To(BeEmpty())
			Expect(logs.FilterLevelExact(zapcore.WarnLevel).Len()).To(Equal(0))
		})
	})

	It("returns quota errors as fatal", func() {
		server.AppendHandlers(ghttp.RespondWith(http.StatusCreated, `{}`, http.Header{
			salesforce.LimitInfoHeader: []string{"api-usage=99/100"},
		}))

		_, err := reconciler.Upsert(ctx, account, decodeRecord(`{"Name":"Acme"}`))
		Expect(salesforce.IsQuotaExceeded(err)).To(BeTrue())
	})
})
