package application_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/labstack/echo/v4"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-split-demo/src/server/application"
	. "github.com/veedubyou/stem-split-demo/src/shared/testing"
	"github.com/veedubyou/stem-split-demo/src/split/entity"
	"net/http"
)

var _ = Describe("Lambda proxy", func() {
	var (
		app   application.App
		ctx   context.Context
		event events.APIGatewayProxyRequest

		proxyResponse events.APIGatewayProxyResponse
		err           error
	)

	var uploadBody = func(size int, instruments []string) string {
		payload := UploadPayload(MakeEncodedAudio(size), "", instruments)
		return string(ExpectSuccess(json.Marshal(payload)))
	}

	BeforeEach(func() {
		app = application.NewApp(AppConfig())
		ctx = lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
			AwsRequestID: "lambda-request-ID",
		})
		event = events.APIGatewayProxyRequest{
			HTTPMethod: "POST",
			Path:       "/prod/audio-split",
			Headers: map[string]string{
				"Content-Type": "application/json",
			},
			RequestContext: events.APIGatewayProxyRequestContext{
				RequestID: "gateway-request-ID",
			},
		}
	})

	JustBeforeEach(func() {
		proxyResponse, err = app.HandleProxyRequest(ctx, event)
	})

	var ItAllowsAnyOrigin = func() {
		It("allows any origin", func() {
			Expect(proxyResponse.Headers[echo.HeaderAccessControlAllowOrigin]).To(Equal("*"))
		})
	}

	var ItRejectsWith = func(statusCode int, message string) {
		It("doesn't fail the invocation", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		It("fails with the right status code", func() {
			Expect(proxyResponse.StatusCode).To(Equal(statusCode))
		})

		It("fails with the right error message", func() {
			Expect(DecodeJSONString[map[string]any](proxyResponse.Body)).To(Equal(map[string]any{
				"error": message,
			}))
		})

		It("responds with json", func() {
			Expect(proxyResponse.Headers[echo.HeaderContentType]).To(Equal(echo.MIMEApplicationJSON))
		})

		ItAllowsAnyOrigin()
	}

	Describe("OPTIONS", func() {
		BeforeEach(func() {
			event.HTTPMethod = "OPTIONS"
		})

		It("returns 200 with an empty body", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(proxyResponse.StatusCode).To(Equal(http.StatusOK))
			Expect(proxyResponse.Body).To(BeEmpty())
		})

		It("sets the CORS headers", func() {
			Expect(proxyResponse.Headers).To(HaveKeyWithValue(echo.HeaderAccessControlAllowOrigin, "*"))
			Expect(proxyResponse.Headers).To(HaveKeyWithValue(echo.HeaderAccessControlAllowMethods, "POST, OPTIONS"))
			Expect(proxyResponse.Headers).To(HaveKeyWithValue(echo.HeaderAccessControlAllowHeaders, "Content-Type, X-User-Id"))
			Expect(proxyResponse.Headers).To(HaveKeyWithValue(echo.HeaderAccessControlMaxAge, "86400"))
		})
	})

	Describe("POST", func() {
		BeforeEach(func() {
			event.Body = uploadBody(OneMB, nil)
		})

		It("returns 200", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(proxyResponse.StatusCode).To(Equal(http.StatusOK))
		})

		ItAllowsAnyOrigin()

		It("uses the invocation's request ID in the URLs", func() {
			result := DecodeJSONString[splitentity.SplitResult](proxyResponse.Body)
			Expect(result.Tracks).To(HaveLen(4))
			for instrument, track := range result.Tracks {
				Expect(track.URL).To(Equal("https://demo.stemsplit.com/output/lambda-request-ID/" + instrument + ".wav"))
				Expect(track.Size).To(Equal(262144))
				Expect(track.Duration).To(Equal(204))
			}
		})

		It("reports the original and the demo fields", func() {
			result := DecodeJSONString[splitentity.SplitResult](proxyResponse.Body)
			Expect(result.Original.Size).To(Equal(1048576))
			Expect(result.DemoMode).To(BeTrue())
			Expect(result.ProcessingTime).To(Equal(2.5))
		})

		Describe("Outside of a lambda context", func() {
			BeforeEach(func() {
				ctx = context.Background()
			})

			It("falls back to the gateway's request ID", func() {
				result := DecodeJSONString[splitentity.SplitResult](proxyResponse.Body)
				Expect(result.Tracks["vocals"].URL).To(Equal("https://demo.stemsplit.com/output/gateway-request-ID/vocals.wav"))
			})

			Describe("And without a gateway request ID", func() {
				BeforeEach(func() {
					event.RequestContext.RequestID = ""
				})

				It("generates one", func() {
					requestID := proxyResponse.Headers[echo.HeaderXRequestID]
					Expect(requestID).NotTo(BeEmpty())

					result := DecodeJSONString[splitentity.SplitResult](proxyResponse.Body)
					Expect(result.Tracks["vocals"].URL).To(Equal("https://demo.stemsplit.com/output/" + requestID + "/vocals.wav"))
				})
			})
		})

		Describe("With a base64 encoded event body", func() {
			BeforeEach(func() {
				event.Body = base64.StdEncoding.EncodeToString([]byte(uploadBody(400, []string{"vocals", "piano"})))
				event.IsBase64Encoded = true
			})

			It("decodes it before handling", func() {
				Expect(proxyResponse.StatusCode).To(Equal(http.StatusOK))

				result := DecodeJSONString[splitentity.SplitResult](proxyResponse.Body)
				Expect(result.Tracks).To(HaveLen(2))
				Expect(result.Tracks["piano"].Size).To(Equal(200))
			})
		})

		Describe("With a broken base64 encoded event body", func() {
			BeforeEach(func() {
				event.Body = "{{not base64"
				event.IsBase64Encoded = true
			})

			ItRejectsWith(http.StatusBadRequest, "Invalid JSON")

			Describe("On a preflight", func() {
				BeforeEach(func() {
					event.HTTPMethod = "OPTIONS"
				})

				It("still returns 200 with an empty body", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(proxyResponse.StatusCode).To(Equal(http.StatusOK))
					Expect(proxyResponse.Body).To(BeEmpty())
				})

				It("still sets the CORS headers", func() {
					Expect(proxyResponse.Headers).To(HaveKeyWithValue(echo.HeaderAccessControlAllowMethods, "POST, OPTIONS"))
					Expect(proxyResponse.Headers).To(HaveKeyWithValue(echo.HeaderAccessControlMaxAge, "86400"))
				})
			})

			Describe("On a GET", func() {
				BeforeEach(func() {
					event.HTTPMethod = "GET"
				})

				ItRejectsWith(http.StatusMethodNotAllowed, "Method not allowed")
			})
		})

		Describe("With a body that isn't json", func() {
			BeforeEach(func() {
				event.Body = "not json"
			})

			ItRejectsWith(http.StatusBadRequest, "Invalid JSON")
		})

		Describe("Without a body", func() {
			BeforeEach(func() {
				event.Body = ""
			})

			ItRejectsWith(http.StatusBadRequest, "No audio data provided")
		})

		Describe("With an oversized file", func() {
			BeforeEach(func() {
				event.Body = uploadBody(TestMaxFileSize+1, nil)
			})

			ItRejectsWith(http.StatusBadRequest, "File too large. Maximum size is 1MB")
		})
	})

	Describe("Other methods", func() {
		for _, method := range []string{"GET", "PUT", "DELETE"} {
			method := method

			Describe(method, func() {
				BeforeEach(func() {
					event.HTTPMethod = method
				})

				ItRejectsWith(http.StatusMethodNotAllowed, "Method not allowed")
			})
		}

		Describe("A missing method", func() {
			BeforeEach(func() {
				event.HTTPMethod = ""
			})

			ItRejectsWith(http.StatusMethodNotAllowed, "Method not allowed")
		})
	})
})
