package instruction_handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/solbridge/solbridge/internal/dto"
	"github.com/solbridge/solbridge/internal/handler/instruction_handler"
	"github.com/solbridge/solbridge/internal/service/instruction_service"
)

const (
	mintKey = "So11111111111111111111111111111111111111112"
	authKey = "Vote111111111111111111111111111111111111111"
	destKey = "Stake11111111111111111111111111111111111111"

	tokenProgramID  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	systemProgramID = "11111111111111111111111111111111"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func u8ptr(v uint8) *uint8    { return &v }
func u64ptr(v uint64) *uint64 { return &v }

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := instruction_handler.NewInstructionHandler(instruction_service.NewService())

	r := gin.New()
	r.POST("/token/create", h.CreateToken)
	r.POST("/token/mint", h.MintToken)
	r.POST("/send/sol", h.SendSol)
	r.POST("/send/token", h.SendToken)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	assert.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestCreateToken(t *testing.T) {
	r := newRouter()

	w, env := doPost(t, r, "/token/create", dto.CreateTokenReq{
		MintAuthority: authKey,
		Mint:          mintKey,
		Decimals:      u8ptr(9),
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var inst dto.InstructionData
	assert.NoError(t, json.Unmarshal(env.Data, &inst))
	assert.Equal(t, tokenProgramID, inst.ProgramID)
	assert.NotEmpty(t, inst.InstructionData)
	assert.Len(t, inst.Accounts, 2)
	assert.Equal(t, mintKey, inst.Accounts[0].Pubkey)
	assert.True(t, inst.Accounts[0].IsWritable)
}

func TestMintToken(t *testing.T) {
	r := newRouter()

	w, env := doPost(t, r, "/token/mint", dto.MintTokenReq{
		Mint:        mintKey,
		Destination: destKey,
		Authority:   authKey,
		Amount:      u64ptr(1000000),
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var inst dto.InstructionData
	assert.NoError(t, json.Unmarshal(env.Data, &inst))
	assert.Equal(t, tokenProgramID, inst.ProgramID)
	assert.Len(t, inst.Accounts, 3)
	assert.Equal(t, authKey, inst.Accounts[2].Pubkey)
	assert.True(t, inst.Accounts[2].IsSigner)
}

func TestSendSol(t *testing.T) {
	r := newRouter()

	w, env := doPost(t, r, "/send/sol", dto.SendSolReq{
		From:     authKey,
		To:       destKey,
		Lamports: u64ptr(1000000000),
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var data dto.SendSolData
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, systemProgramID, data.ProgramID)
	assert.Equal(t, []string{authKey, destKey}, data.Accounts)
	assert.NotEmpty(t, data.InstructionData)
}

func TestSendToken(t *testing.T) {
	r := newRouter()

	w, env := doPost(t, r, "/send/token", dto.SendTokenReq{
		Destination: destKey,
		Mint:        mintKey,
		Owner:       authKey,
		Amount:      u64ptr(42),
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var inst dto.InstructionData
	assert.NoError(t, json.Unmarshal(env.Data, &inst))
	assert.Equal(t, tokenProgramID, inst.ProgramID)
	assert.Len(t, inst.Accounts, 3)
	assert.Equal(t, mintKey, inst.Accounts[0].Pubkey)
	assert.Equal(t, destKey, inst.Accounts[1].Pubkey)
	assert.Equal(t, authKey, inst.Accounts[2].Pubkey)
}

// Two identical requests must yield byte-identical instruction payloads.
func TestInstruction_Deterministic(t *testing.T) {
	r := newRouter()

	req := dto.MintTokenReq{Mint: mintKey, Destination: destKey, Authority: authKey, Amount: u64ptr(7)}

	_, envA := doPost(t, r, "/token/mint", req)
	_, envB := doPost(t, r, "/token/mint", req)
	assert.True(t, envA.Success)
	assert.JSONEq(t, string(envA.Data), string(envB.Data))
}

// Absent numeric fields must be rejected, while an explicit zero binds.
func TestNumericFields_PresenceRequired(t *testing.T) {
	r := newRouter()

	missing := []struct {
		name string
		path string
		body map[string]interface{}
	}{
		{"create without decimals", "/token/create", map[string]interface{}{"mintAuthority": authKey, "mint": mintKey}},
		{"mint without amount", "/token/mint", map[string]interface{}{"mint": mintKey, "destination": destKey, "authority": authKey}},
		{"sol without lamports", "/send/sol", map[string]interface{}{"from": authKey, "to": destKey}},
		{"token without amount", "/send/token", map[string]interface{}{"destination": destKey, "mint": mintKey, "owner": authKey}},
	}

	for _, tc := range missing {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doPost(t, r, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}

	zeros := []struct {
		name string
		path string
		body interface{}
	}{
		{"zero decimals", "/token/create", dto.CreateTokenReq{MintAuthority: authKey, Mint: mintKey, Decimals: u8ptr(0)}},
		{"zero amount", "/token/mint", dto.MintTokenReq{Mint: mintKey, Destination: destKey, Authority: authKey, Amount: u64ptr(0)}},
		{"zero lamports", "/send/sol", dto.SendSolReq{From: authKey, To: destKey, Lamports: u64ptr(0)}},
		{"zero token amount", "/send/token", dto.SendTokenReq{Destination: destKey, Mint: mintKey, Owner: authKey, Amount: u64ptr(0)}},
	}

	for _, tc := range zeros {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doPost(t, r, tc.path, tc.body)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, env.Success)
		})
	}
}

func TestInvalidPubkey_AllEndpoints(t *testing.T) {
	r := newRouter()

	cases := []struct {
		name string
		path string
		body interface{}
	}{
		{"create mint", "/token/create", dto.CreateTokenReq{MintAuthority: authKey, Mint: "l0IO-bad", Decimals: u8ptr(9)}},
		{"create authority", "/token/create", dto.CreateTokenReq{MintAuthority: "l0IO-bad", Mint: mintKey, Decimals: u8ptr(9)}},
		{"mint destination", "/token/mint", dto.MintTokenReq{Mint: mintKey, Destination: "l0IO-bad", Authority: authKey, Amount: u64ptr(1)}},
		{"sol from", "/send/sol", dto.SendSolReq{From: "l0IO-bad", To: destKey, Lamports: u64ptr(1)}},
		{"sol to", "/send/sol", dto.SendSolReq{From: authKey, To: "l0IO-bad", Lamports: u64ptr(1)}},
		{"token owner", "/send/token", dto.SendTokenReq{Destination: destKey, Mint: mintKey, Owner: "l0IO-bad", Amount: u64ptr(1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, env := doPost(t, r, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
			assert.Nil(t, env.Data)
		})
	}
}
