package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	. "github.com/hotglue/target-salesforce/config"
)

var _ = Describe("Config", func() {
	var v *viper.Viper

	BeforeEach(func() {
		v = viper.New()
		v.Set(RefreshTokenKey, "refresh")
		v.Set(ClientIDKey, "client")
		v.Set(ClientSecretKey, "secret")
		v.Set(StartDateKey, "2021-01-01T00:00:00Z")
		v.Set(APITypeKey, "rest")
		v.Set(SelectFieldsByDefaultKey, true)
	})

	Describe("Load", func() {
		It("builds the run configuration", func() {
			cfg, err := Load(v, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.RefreshToken).To(Equal("refresh"))
			Expect(cfg.APIType).To(Equal(RESTAPI))
			Expect(cfg.StartDate).To(Equal(time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)))
			Expect(cfg.SelectFieldsByDefault).To(BeTrue())
			Expect(cfg.PriorityObjects).To(Equal([]string{"Account", "Contact"}))
			Expect(cfg.QuotaPercentTotal).To(BeZero())
			Expect(cfg.ConfigFile).To(BeEmpty())
		})

		It("does not share the default priority list", func() {
			cfg, err := Load(v, "")
			Expect(err).NotTo(HaveOccurred())
			cfg.PriorityObjects[0] = "Lead"
			Expect(DefaultPriorityObjects[0]).To(Equal("Account"))
		})

		It("makes the config file path absolute", func() {
			cfg, err := Load(v, "config.json")
			Expect(err).NotTo(HaveOccurred())
			Expect(filepath.IsAbs(cfg.ConfigFile)).To(BeTrue())
			Expect(filepath.Base(cfg.ConfigFile)).To(Equal("config.json"))
		})

		It("reads quota percentages and priorities", func() {
			v.Set(QuotaPercentTotalKey, 50)
			v.Set(QuotaPercentPerRunKey, "10.5")
			v.Set(PriorityObjectsKey, []string{"Lead"})

			cfg, err := Load(v, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.QuotaPercentTotal).To(Equal(50.0))
			Expect(cfg.QuotaPercentPerRun).To(Equal(10.5))
			Expect(cfg.PriorityObjects).To(Equal([]string{"Lead"}))
		})

		It("rejects an invalid api type", func() {
			v.Set(APITypeKey, "SOAP")
			_, err := Load(v, "")
			Expect(err).To(MatchError(`Invalid api_type "SOAP". Valid options: REST, BULK`))
		})

		It("rejects an invalid start date", func() {
			v.Set(StartDateKey, "yesterday")
			_, err := Load(v, "")
			Expect(err).To(MatchError(ContainSubstring(`Invalid start_date "yesterday"`)))
		})

		DescribeTable("rejects quota percentages out of range",
			func(value interface{}) {
				v.Set(QuotaPercentTotalKey, value)
				_, err := Load(v, "")
				Expect(err).To(MatchError(ContainSubstring("Invalid quota_percent_total")))
			},
			Entry("zero", 0),
			Entry("negative", -5),
			Entry("above one hundred", 150),
		)
	})

	Describe("ParseAPIType", func() {
		It("accepts either case", func() {
			Expect(ParseAPIType("bulk")).To(Equal(BulkAPI))
			Expect(ParseAPIType(" REST ")).To(Equal(RESTAPI))
		})
	})

	Describe("ReadConfigFile", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = ioutil.TempDir("", "")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			Expect(os.RemoveAll(tempDir)).To(Succeed())
		})

		It("merges a JSON config file", func() {
			path := filepath.Join(tempDir, "config.json")
			Expect(ioutil.WriteFile(path, []byte(`{"api_type": "BULK", "is_sandbox": true}`), 0644)).To(Succeed())

			fresh := viper.New()
			Expect(ReadConfigFile(fresh, path)).To(Succeed())
			Expect(fresh.GetString(APITypeKey)).To(Equal("BULK"))
			Expect(fresh.GetBool(IsSandboxKey)).To(BeTrue())
		})

		It("is a no-op without a path", func() {
			Expect(ReadConfigFile(viper.New(), "")).To(Succeed())
		})

		It("errors on a missing file", func() {
			path := filepath.Join(tempDir, "nope.json")
			err := ReadConfigFile(viper.New(), path)
			Expect(err).To(MatchError(ContainSubstring("Failed reading config file " + path)))
		})
	})

	Describe("LoadEnvFile", func() {
		It("exports variables from a .env file", func() {
			tempDir, err := ioutil.TempDir("", "")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(tempDir)

			path := filepath.Join(tempDir, ".env")
			Expect(ioutil.WriteFile(path, []byte("TARGET_SALESFORCE_TEST_VALUE=from-dotenv\n"), 0644)).To(Succeed())
			defer os.Unsetenv("TARGET_SALESFORCE_TEST_VALUE")

			LoadEnvFile(path)
			Expect(os.Getenv("TARGET_SALESFORCE_TEST_VALUE")).To(Equal("from-dotenv"))
		})
	})
})
