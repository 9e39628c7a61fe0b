package jwt

import (
	"testing"
	"time"

	"github.com/Sandrobahia35/divisao-endemias-mobile-sub000/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "chave-de-teste-unitario-endemias-2026",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateAccessToken("usr-1", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken falhou: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falhou: %v", err)
	}

	if claims.UsuarioID != "usr-1" {
		t.Errorf("esperado UsuarioID=usr-1, obtido=%s", claims.UsuarioID)
	}
	if claims.Role != "admin" {
		t.Errorf("esperado Role=admin, obtido=%s", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("esperado TokenType=access, obtido=%s", claims.TokenType)
	}
	if claims.Issuer != "divisao-endemias" {
		t.Errorf("esperado Issuer=divisao-endemias, obtido=%s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI não deveria ser vazio")
	}
}

func TestGenerateRefreshToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateRefreshToken("usr-1", "supervisor_area")
	if err != nil {
		t.Fatalf("GenerateRefreshToken falhou: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken falhou: %v", err)
	}

	if claims.TokenType != "refresh" {
		t.Errorf("esperado TokenType=refresh, obtido=%s", claims.TokenType)
	}

	// TTL aproximado de 7 dias
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl < 6*24*time.Hour || ttl > 8*24*time.Hour {
		t.Errorf("RefreshToken TTL esperado ~7 dias, obtido=%v", ttl)
	}
}

func TestParseToken_InvalidToken(t *testing.T) {
	m := newTestManager()

	_, err := m.ParseToken("token.invalido.qualquer")
	if err == nil {
		t.Error("esperado erro ao interpretar token inválido")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m1 := newTestManager()
	m2 := NewManager(&config.AuthConfig{
		JWTSecret:      "outra-chave-secreta-diferente",
		AccessTokenTTL: 15 * time.Minute,
	})

	token, _ := m1.GenerateAccessToken("usr-1", "admin")
	_, err := m2.ParseToken(token)
	if err == nil {
		t.Error("token assinado com outra chave não deveria validar")
	}
}

func TestParseToken_ExpiredToken(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:       "chave-de-teste-expiracao",
		AccessTokenTTL:  1 * time.Millisecond,
		RefreshTokenTTL: 1 * time.Millisecond,
	})

	token, _ := m.GenerateAccessToken("usr-1", "admin")
	time.Sleep(10 * time.Millisecond)

	_, err := m.ParseToken(token)
	if err == nil {
		t.Error("token expirado não deveria validar")
	}
	if err != ErrTokenExpired {
		t.Errorf("esperado ErrTokenExpired, obtido: %v", err)
	}
}
