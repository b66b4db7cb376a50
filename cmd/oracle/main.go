// Development oracle simulator. It listens for decryption submissions from
// the server, opens the sealed score blob with the shared development key,
// signs the revealed value, and POSTs the callback — the same asynchronous
// round-trip a production decryption service would perform.
//
// The signing key is derived from the shared passphrase; the matching public
// key is printed at startup so it can be handed to the server via -k.
package main

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/term"

	"github.com/matchvault/matchvault/internal/cryptox"
	"github.com/matchvault/matchvault/internal/server/blobstore"
	"github.com/matchvault/matchvault/internal/server/config"
	"github.com/matchvault/matchvault/internal/server/oracle"
)

const (
	scoreKeySalt   = "matchvault.score.v1"
	signingKeySalt = "matchvault.oracle.key.v1"
)

type callbackPayload struct {
	RequestID int64  `json:"request_id"`
	Value     int64  `json:"value"`
	Proof     string `json:"proof"`
}

type simulator struct {
	blobs      blobstore.Store
	scoreKey   []byte
	signingKey ed25519.PrivateKey
	generation uint64
	client     *http.Client
}

func (s *simulator) handleDecrypt(c *gin.Context) {

	var sub oracle.Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed submission"})
		return
	}

	if sub.KeyGeneration != s.generation {
		c.JSON(http.StatusConflict, gin.H{"error": "unknown key generation"})
		return
	}

	sealed, err := s.blobs.Get(c.Request.Context(), sub.ScoreHandle)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown score handle"})
		return
	}

	plaintext, err := cryptox.Open(sealed, s.scoreKey)
	if err != nil || len(plaintext) != 8 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "undecryptable blob"})
		return
	}
	value := int64(binary.BigEndian.Uint64(plaintext))

	// The callback runs asynchronously, like a real decryption service
	// that answers minutes later.
	go s.postCallback(sub, value)

	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

func (s *simulator) postCallback(sub oracle.Submission, value int64) {

	proof := ed25519.Sign(s.signingKey, oracle.ProofPayload(sub.RequestID, value, s.generation))

	body, err := json.Marshal(callbackPayload{
		RequestID: sub.RequestID,
		Value:     value,
		Proof:     base64.StdEncoding.EncodeToString(proof),
	})
	if err != nil {
		log.Printf("callback marshal error: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sub.CallbackURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("callback request error: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("callback delivery error: %v", err)
		return
	}
	defer resp.Body.Close()

	log.Printf("callback for request %d delivered: %s", sub.RequestID, resp.Status)
}

func readPassphrase() ([]byte, error) {
	fmt.Fprint(os.Stderr, "shared passphrase: ")
	if term.IsTerminal(int(os.Stdin.Fd())) {
		defer fmt.Fprintln(os.Stderr)
		return term.ReadPassword(int(os.Stdin.Fd()))
	}
	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return nil, err
	}
	return []byte(line), nil
}

func main() {

	cfg := config.LoadConfig()

	passphrase, err := readPassphrase()
	if err != nil {
		log.Fatalf("error reading passphrase: %v", err)
	}

	seed := cryptox.DeriveKey(passphrase, []byte(signingKeySalt))
	signingKey := ed25519.NewKeyFromSeed(seed)
	log.Printf("oracle public key (generation %d): %s",
		cfg.OracleKeyGeneration,
		hex.EncodeToString(signingKey.Public().(ed25519.PublicKey)))

	ctx := context.Background()
	var blobs blobstore.Store
	if cfg.S3BaseEndpoint == "" {
		log.Fatal("the simulator needs the shared S3 blob store (-e)")
	}
	blobs, err = blobstore.NewS3Store(ctx, cfg)
	if err != nil {
		log.Fatalf("blob store init error: %v", err)
	}

	sim := &simulator{
		blobs:      blobs,
		scoreKey:   cryptox.DeriveKey(passphrase, []byte(scoreKeySalt)),
		signingKey: signingKey,
		generation: cfg.OracleKeyGeneration,
		client:     &http.Client{Timeout: 10 * time.Second},
	}

	// Listen on the port the server submits to.
	u, err := url.Parse(cfg.OracleEndpoint)
	if err != nil {
		log.Fatalf("bad oracle endpoint: %v", err)
	}
	addr := ":" + u.Port()
	if u.Port() == "" {
		addr = ":9100"
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.POST("/decrypt", sim.handleDecrypt)

	log.Printf("oracle simulator listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
