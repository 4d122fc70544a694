package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client est le sous-ensemble de go-redis utilisé par les stores.
// Les tests fournissent un client en mémoire.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// DecodePolicy définit le sort d'un blob JSON corrompu.
type DecodePolicy int

const (
	// DegradeToEmpty : un blob illisible vaut état vide (loggé, jamais remonté).
	// C'est le comportement historique de l'appli.
	DegradeToEmpty DecodePolicy = iota
	// FailOnCorrupt : la corruption devient une erreur pour l'appelant.
	FailOnCorrupt
)

// KV lit et écrit des valeurs JSON à des clés Redis.
// Toutes les collections de l'appli sont des blobs JSON complets,
// relus et réécrits entièrement à chaque opération.
type KV struct {
	client Client
	Policy DecodePolicy
}

func NewKV(client Client) *KV {
	return &KV{client: client, Policy: DegradeToEmpty}
}

// GetJSON décode la valeur à `key` dans out.
// Renvoie false si la clé est absente ; out est alors laissé tel quel.
func (kv *KV) GetJSON(ctx context.Context, key string, out interface{}) (bool, error) {
	data, err := kv.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lecture %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		log.Printf("⚠️ Blob corrompu à la clé %s: %v", key, err)
		if kv.Policy == FailOnCorrupt {
			return false, fmt.Errorf("%w (clé %s)", ErrCorruptData, key)
		}
		return false, nil
	}
	return true, nil
}

// SetJSON sérialise v et l'écrit à `key`, sans expiration
func (kv *KV) SetJSON(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encodage %s: %v", key, err)
	}
	if err := kv.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("écriture %s: %w", key, err)
	}
	return nil
}

// Delete supprime la clé ; sans effet si elle n'existe pas
func (kv *KV) Delete(ctx context.Context, key string) error {
	return kv.client.Del(ctx, key).Err()
}

// Publish notifie les abonnés d'un canal (sync panier temps réel).
// Best effort : une erreur de pub/sub ne doit pas faire échouer l'opération.
func (kv *KV) Publish(ctx context.Context, channel, payload string) {
	if err := kv.client.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("⚠️ Publish %s: %v", channel, err)
	}
}
