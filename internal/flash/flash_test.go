package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func flashCookie(w *httptest.ResponseRecorder) *http.Cookie {
	var found *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == CookieName {
			found = ck
		}
	}
	return found
}

func TestAddThenPop(t *testing.T) {
	s := NewStore("secret", false)

	c, w := newContext()
	require.NoError(t, s.Add(c, Error("Neplatná emailová adresa."), Error("Neplatné PSČ.")))
	ck := flashCookie(w)
	require.NotNil(t, ck)
	assert.True(t, ck.HttpOnly)

	c2, w2 := newContext(ck)
	messages := s.Pop(c2)

	assert.Equal(t, []Message{
		{Category: CategoryError, Text: "Neplatná emailová adresa."},
		{Category: CategoryError, Text: "Neplatné PSČ."},
	}, messages)
	cleared := flashCookie(w2)
	require.NotNil(t, cleared)
	assert.Equal(t, "", cleared.Value)
	assert.True(t, cleared.MaxAge < 0)
}

func TestAdd_KeepsUnreadMessages(t *testing.T) {
	s := NewStore("secret", false)

	c, w := newContext()
	require.NoError(t, s.Add(c, Error("first")))

	c2, w2 := newContext(flashCookie(w))
	require.NoError(t, s.Add(c2, Success("second")))
	require.NoError(t, s.Add(c2, Success("third")))

	c3, _ := newContext(flashCookie(w2))
	assert.Equal(t, []Message{Error("first"), Success("second"), Success("third")}, s.Pop(c3))
}

func TestPop_NoCookie(t *testing.T) {
	s := NewStore("secret", false)
	c, w := newContext()

	assert.Empty(t, s.Pop(c))
	assert.Nil(t, flashCookie(w))
}

func TestPop_WrongSecret(t *testing.T) {
	c, w := newContext()
	require.NoError(t, NewStore("secret", false).Add(c, Success("ok")))

	c2, w2 := newContext(flashCookie(w))
	assert.Empty(t, NewStore("other", false).Pop(c2))
	assert.NotNil(t, flashCookie(w2))
}

func TestPop_Expired(t *testing.T) {
	s := NewStore("secret", false)
	s.ttl = -time.Minute

	token, err := s.sign([]Message{Success("late")})
	require.NoError(t, err)

	c, _ := newContext(&http.Cookie{Name: CookieName, Value: token})
	assert.Empty(t, s.Pop(c))
}

func TestPop_Garbage(t *testing.T) {
	s := NewStore("secret", false)
	c, _ := newContext(&http.Cookie{Name: CookieName, Value: "not-a-token"})

	assert.Empty(t, s.Pop(c))
}
