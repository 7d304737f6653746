package wire

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/andhikaputrab/vgsales-dashboard/internal/model"
)

type payload struct {
	Criteria model.FilterCriteria `json:"criteria"`
	Delta    null.Float           `json:"delta"`
	Best     null.String          `json:"best"`
	First    null.Int             `json:"first"`
}

func TestMarshalRoundTrip(t *testing.T) {
	in := payload{
		Criteria: model.FilterCriteria{
			Years:     model.NewYearRange(2010, 2000),
			Genres:    model.SubsetOf("Sports", "Racing"),
			Platforms: model.AllOf(),
			Publisher: model.ExactPublisher("Nintendo"),
		},
		Delta: null.FloatFrom(-12.5),
		First: null.IntFrom(1985),
	}

	b, err := Marshal(in)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, Unmarshal(b, &generic))
	criteria := generic["criteria"].(map[string]any)
	assert.Equal(t, "*", criteria["platforms"])
	assert.Equal(t, []any{"Sports", "Racing"}, criteria["genres"])
	assert.Nil(t, generic["best"])

	var out payload
	require.NoError(t, Unmarshal(b, &out))
	assert.Equal(t, in.Criteria.Years, out.Criteria.Years)
	assert.Equal(t, []string{"Sports", "Racing"}, out.Criteria.Genres.Values())
	assert.True(t, out.Criteria.Platforms.IsAll())
	assert.Equal(t, "Nintendo", out.Criteria.Publisher.Publisher())
	assert.Equal(t, in.Delta, out.Delta)
	assert.False(t, out.Best.Valid)
	assert.EqualValues(t, 1985, out.First.Int64)
}

func TestSendNegotiates(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(ctx *fiber.Ctx) error {
		return Send(ctx, fiber.Map{"value": 1})
	})

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(fiber.HeaderAccept, MIMEApplicationMsgpack)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, MIMEApplicationMsgpack, resp.Header.Get(fiber.HeaderContentType))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, Unmarshal(body, &out))
	assert.EqualValues(t, 1, out["value"])
}
