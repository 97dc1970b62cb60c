package jwt_test

import (
	"time"

	tokenIssuer "chainledger/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "operator",
			Subject:    "user-1",
			Expiration: 24,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("signs a token that validates with the same secret", func() {
		token := service.Generate(info)
		signed, err := service.Sign(token)
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["username"]).To(Equal("operator"))
		Expect(claims["sub"]).To(Equal("user-1"))
	})

	It("rejects a token signed with a different secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects an expired token", func() {
		issuedAt := time.Now().Add(-48 * time.Hour)
		tokenIssuer.TimeNow = func() time.Time { return issuedAt }

		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		tokenIssuer.TimeNow = time.Now

		_, err = service.Validate(signed)
		Expect(err).To(HaveOccurred())
	})

	It("rejects a token with an unexpected signing method", func() {
		none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
		signed, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("rejects garbage input", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})
})
