package application_test

import (
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-split-demo/src/server/application"
	. "github.com/veedubyou/stem-split-demo/src/shared/testing"
	"github.com/veedubyou/stem-split-demo/src/split/entity"
	"net/http"
	"net/http/httptest"
)

var _ = Describe("App", func() {
	var (
		app            application.App
		requestFactory RequestFactory
		response       *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		app = application.NewApp(AppConfig())
		requestFactory = RequestFactory{
			Method: "POST",
			Target: application.SplitRoute,
		}
	})

	JustBeforeEach(func() {
		response = httptest.NewRecorder()
		app.ServeHTTP(response, requestFactory.Make())
	})

	var ItAllowsAnyOrigin = func() {
		It("allows any origin", func() {
			Expect(response.Header().Get(echo.HeaderAccessControlAllowOrigin)).To(Equal("*"))
		})
	}

	var ItRespondsWithJSON = func() {
		It("responds with json", func() {
			Expect(response.Header().Get(echo.HeaderContentType)).To(Equal(echo.MIMEApplicationJSON))
		})
	}

	Describe("Preflight", func() {
		BeforeEach(func() {
			requestFactory.Method = "OPTIONS"
			requestFactory.Mods.Add(func(r *http.Request) {
				r.Header.Set(echo.HeaderOrigin, "https://stemsplit.app")
				r.Header.Set(echo.HeaderAccessControlRequestMethod, "POST")
			})
		})

		It("returns 200", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
		})

		It("has an empty body", func() {
			Expect(response.Body.Len()).To(BeZero())
		})

		It("sets the CORS headers", func() {
			header := response.Header()
			Expect(header.Get(echo.HeaderAccessControlAllowOrigin)).To(Equal("*"))
			Expect(header.Get(echo.HeaderAccessControlAllowMethods)).To(Equal("POST, OPTIONS"))
			Expect(header.Get(echo.HeaderAccessControlAllowHeaders)).To(Equal("Content-Type, X-User-Id"))
			Expect(header.Get(echo.HeaderAccessControlMaxAge)).To(Equal("86400"))
		})

		Describe("With a body", func() {
			BeforeEach(func() {
				requestFactory.RawBody = "not json"
			})

			It("doesn't look at it", func() {
				Expect(response.Code).To(Equal(http.StatusOK))
				Expect(response.Body.Len()).To(BeZero())
			})
		})
	})

	Describe("Disallowed methods", func() {
		for _, method := range []string{"GET", "PUT", "PATCH", "DELETE"} {
			method := method

			Describe(method, func() {
				BeforeEach(func() {
					requestFactory.Method = method
				})

				It("returns 405", func() {
					Expect(response.Code).To(Equal(http.StatusMethodNotAllowed))
				})

				It("returns the error as json", func() {
					Expect(DecodeJSONError(response.Body).Error).To(Equal("Method not allowed"))
				})

				ItRespondsWithJSON()
				ItAllowsAnyOrigin()
			})
		}
	})

	Describe("Split uploads", func() {
		BeforeEach(func() {
			requestFactory.JSONObj = UploadPayload(MakeEncodedAudio(OneMB), "", nil)
		})

		It("returns success", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
		})

		ItRespondsWithJSON()
		ItAllowsAnyOrigin()

		It("generates a request ID and uses it in the URLs", func() {
			requestID := response.Header().Get(echo.HeaderXRequestID)
			Expect(requestID).NotTo(BeEmpty())

			result := DecodeJSON[splitentity.SplitResult](response.Body)
			Expect(result.Tracks).To(HaveLen(4))
			Expect(result.Tracks["drums"].URL).To(Equal("https://demo.stemsplit.com/output/" + requestID + "/drums.wav"))
			Expect(result.Tracks["drums"].Size).To(Equal(262144))
		})

		Describe("With a request ID from upstream", func() {
			BeforeEach(func() {
				requestFactory.Mods.Add(WithRequestID("upstream-ID"))
			})

			It("keeps it", func() {
				Expect(response.Header().Get(echo.HeaderXRequestID)).To(Equal("upstream-ID"))

				result := DecodeJSON[splitentity.SplitResult](response.Body)
				Expect(result.Tracks["bass"].URL).To(Equal("https://demo.stemsplit.com/output/upstream-ID/bass.wav"))
			})
		})
	})

	Describe("Rejected uploads", func() {
		BeforeEach(func() {
			requestFactory.RawBody = "not json"
		})

		It("returns 400", func() {
			Expect(response.Code).To(Equal(http.StatusBadRequest))
			Expect(DecodeJSONError(response.Body).Error).To(Equal("Invalid JSON"))
		})

		ItRespondsWithJSON()
		ItAllowsAnyOrigin()
	})

	Describe("Unknown routes", func() {
		BeforeEach(func() {
			requestFactory.Target = "/nowhere"
		})

		It("returns 404 as json", func() {
			Expect(response.Code).To(Equal(http.StatusNotFound))
			Expect(DecodeJSONError(response.Body).Error).To(Equal("Not found"))
		})

		ItAllowsAnyOrigin()
	})

	Describe("Health check", func() {
		BeforeEach(func() {
			requestFactory.Method = "GET"
			requestFactory.Target = application.HealthCheckRoute
		})

		It("returns 200", func() {
			Expect(response.Code).To(Equal(http.StatusOK))
		})
	})
})
