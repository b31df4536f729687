package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/computaria/cachorro-sumido/internal/posts"
	"github.com/computaria/cachorro-sumido/internal/ws"
)

// --- Structs for request binding ---

type createPostRequest struct {
	PetName           string   `json:"pet_name"`
	Description       string   `json:"description"`
	Breed             string   `json:"breed"`
	Color             string   `json:"color"`
	Neighborhood      string   `json:"neighborhood"`
	Accessory         string   `json:"accessory"`
	LocationReference string   `json:"location_reference"`
	Whatsapp          string   `json:"whatsapp"`
	Instagram         string   `json:"instagram"`
	PetAge            string   `json:"pet_age"`
	Address           string   `json:"address"`
	Password          string   `json:"password"`
	ImagesURLs        []string `json:"images_urls"`
}

type updatePostRequest struct {
	PetName           *string   `json:"pet_name"`
	Description       *string   `json:"description"`
	Breed             *string   `json:"breed"`
	Color             *string   `json:"color"`
	Neighborhood      *string   `json:"neighborhood"`
	Accessory         *string   `json:"accessory"`
	LocationReference *string   `json:"location_reference"`
	Whatsapp          *string   `json:"whatsapp"`
	Instagram         *string   `json:"instagram"`
	PetAge            *string   `json:"pet_age"`
	Address           *string   `json:"address"`
	Password          string    `json:"password"`
	ImagesURLs        *[]string `json:"images_urls"`
}

type deletePostRequest struct {
	Password string `json:"password"`
}

// WsMessage is the JSON envelope pushed to websocket subscribers.
type WsMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// --- Handlers ---

type Env struct {
	Repo      *posts.Repository
	Hub       *ws.Hub
	UploadDir string
}

func (e *Env) Health(c *gin.Context) {
	statusBD := "ok"
	if err := e.Repo.Ping(); err != nil {
		statusBD = err.Error()
	}
	c.JSON(http.StatusOK, gin.H{
		"descricao": "API para MeuCachorroTaSumido",
		"autor":     "Indivíduos Computaria",
		"statusBD":  statusBD,
	})
}

func (e *Env) ListPosts(c *gin.Context) {
	filters := posts.Filters{
		Breed:        c.Query("breed"),
		Neighborhood: c.Query("neighborhood"),
		Color:        c.Query("color"),
	}
	result, err := e.Repo.List(filters)
	if err != nil {
		log.Printf("Error fetching posts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor."})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (e *Env) GetPost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de post inválido."})
		return
	}
	post, err := e.Repo.GetByID(id)
	if errors.Is(err, posts.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado."})
		return
	}
	if err != nil {
		log.Printf("Error fetching post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor."})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (e *Env) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entrada inválida: " + err.Error()})
		return
	}
	input := posts.CreateInput{
		PetName:           req.PetName,
		Description:       req.Description,
		Breed:             req.Breed,
		Color:             req.Color,
		Neighborhood:      req.Neighborhood,
		Accessory:         req.Accessory,
		LocationReference: req.LocationReference,
		Whatsapp:          req.Whatsapp,
		Instagram:         req.Instagram,
		PetAge:            req.PetAge,
		Address:           req.Address,
		Password:          req.Password,
		ImageURLs:         req.ImagesURLs,
	}
	if ve := posts.ValidateCreate(&input); ve != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}
	post, err := e.Repo.Create(input)
	if err != nil {
		log.Printf("Error creating post: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor."})
		return
	}

	e.broadcastMessage(WsMessage{Type: "new_post", Data: post})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post criado com sucesso!",
		"postId":  post.ID,
		"images":  input.ImageURLs,
	})
}

func (e *Env) UpdatePost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de post inválido."})
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entrada inválida: " + err.Error()})
		return
	}
	input := posts.UpdateInput{
		PetName:           req.PetName,
		Description:       req.Description,
		Breed:             req.Breed,
		Color:             req.Color,
		Neighborhood:      req.Neighborhood,
		Accessory:         req.Accessory,
		LocationReference: req.LocationReference,
		Whatsapp:          req.Whatsapp,
		Instagram:         req.Instagram,
		PetAge:            req.PetAge,
		Address:           req.Address,
		Password:          req.Password,
		ImageURLs:         req.ImagesURLs,
	}
	if ve := posts.ValidateUpdate(&input); ve != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}
	switch err := e.Repo.Update(id, input); {
	case errors.Is(err, posts.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado."})
		return
	case errors.Is(err, posts.ErrWrongPassword):
		// 401 here vs 403 on delete mirrors how the API always behaved;
		// a post's existence is public via GET anyway.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Senha incorreta."})
		return
	case err != nil:
		log.Printf("Error updating post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao atualizar post."})
		return
	}

	e.broadcastMessage(WsMessage{Type: "post_updated", Data: gin.H{"id": id}})

	c.JSON(http.StatusOK, gin.H{
		"message":    "Post atualizado com sucesso!",
		"updated_id": id,
	})
}

func (e *Env) DeletePost(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de post inválido."})
		return
	}
	// The secret comes in the body, never the query string: query strings
	// end up in access logs.
	var req deletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Senha é obrigatória."})
		return
	}
	urls, err := e.Repo.Delete(id, req.Password)
	switch {
	case errors.Is(err, posts.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post não encontrado."})
		return
	case errors.Is(err, posts.ErrWrongPassword):
		c.JSON(http.StatusForbidden, gin.H{"error": "Senha incorreta."})
		return
	case err != nil:
		log.Printf("Error deleting post %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor."})
		return
	}

	e.removeLocalImages(urls)
	e.broadcastMessage(WsMessage{Type: "post_deleted", Data: gin.H{"id": id}})

	c.JSON(http.StatusOK, gin.H{"message": "Post deletado com sucesso."})
}

// removeLocalImages unlinks image files that live under the local upload
// directory. This runs after the transaction committed; failures are
// logged and never surfaced to the caller. Hosted URLs are left alone.
func (e *Env) removeLocalImages(urls []string) {
	if e.UploadDir == "" {
		return
	}
	for _, u := range urls {
		if !strings.HasPrefix(u, "/uploads/") {
			continue
		}
		path := filepath.Join(e.UploadDir, filepath.Base(u))
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove image file %s: %v", path, err)
		}
	}
}

func (e *Env) broadcastMessage(msg WsMessage) {
	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshalling WS message: %v", err)
		return
	}
	e.Hub.Broadcast <- jsonMsg
}

func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
