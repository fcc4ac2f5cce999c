package config_test

import (
	"os"
	"path/filepath"
	"time"

	"tasker/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Load", func() {
	var (
		v   *viper.Viper
		app config.App
		err error
	)

	BeforeEach(func() {
		v = viper.New()
	})

	JustBeforeEach(func() {
		app, err = config.Load(v)
	})

	When("nothing is set", func() {
		It("should use the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.CredentialsFile).To(Equal("user_credentials.txt"))
			Expect(app.TaskDir).To(Equal("task_data"))
			Expect(app.LogLevel).To(Equal(zapcore.InfoLevel))
			Expect(app.LogFile).To(Equal("tasker.log"))
			Expect(app.PasswordScheme).To(Equal("sha256"))
			Expect(app.SessionSecret).To(BeEmpty())
			Expect(app.SessionTTL).To(Equal(8 * time.Hour))
			Expect(app.ClearScreen).To(BeTrue())
		})
	})

	When("environment variables are set", func() {
		BeforeEach(func() {
			setEnv("TASKER_TASK_DIR", "/tmp/tasks")
			setEnv("TASKER_PASSWORD_SCHEME", "BCRYPT")
			setEnv("TASKER_SESSION_TTL", "15m")
			setEnv("TASKER_CLEAR_SCREEN", "false")
		})

		It("should override the defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.TaskDir).To(Equal("/tmp/tasks"))
			Expect(app.PasswordScheme).To(Equal("bcrypt"))
			Expect(app.SessionTTL).To(Equal(15 * time.Minute))
			Expect(app.ClearScreen).To(BeFalse())
		})
	})

	When("a config file is read", func() {
		BeforeEach(func() {
			dir := GinkgoT().TempDir()
			content := "credentials_file: creds.txt\nlog_level: debug\n"
			Expect(os.WriteFile(filepath.Join(dir, "tasker.yaml"), []byte(content), 0o644)).To(Succeed())

			v.SetConfigFile(filepath.Join(dir, "tasker.yaml"))
			Expect(v.ReadInConfig()).To(Succeed())
		})

		It("should take values from the file", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(app.CredentialsFile).To(Equal("creds.txt"))
			Expect(app.LogLevel).To(Equal(zapcore.DebugLevel))
		})
	})

	When("the log level is unknown", func() {
		BeforeEach(func() {
			v.Set("log_level", "chatty")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("log_level")))
		})
	})

	When("the session ttl is not positive", func() {
		BeforeEach(func() {
			v.Set("session_ttl", "0s")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("session_ttl must be positive")))
		})
	})

	When("the task directory is blank", func() {
		BeforeEach(func() {
			v.Set("task_dir", "  ")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("task_dir is empty")))
		})
	})
})

func setEnv(key, value string) {
	GinkgoHelper()
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}
