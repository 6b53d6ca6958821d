package loyalty

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	model "github.com/fidelia/loyalty/internal/models"
	service "github.com/fidelia/loyalty/internal/services"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type LoyaltyHandler struct {
	router  *mux.Router
	service *service.LoyaltyService
	logger  *zap.Logger
}

func NewHandler(serv *service.LoyaltyService, logger *zap.Logger) *LoyaltyHandler {
	router := mux.NewRouter()
	handler := &LoyaltyHandler{router, serv, logger}

	router.Use(MiddlewareLog())
	router.Handle("/metrics", promhttp.Handler())

	router.HandleFunc("/purchase", handler.RegisterPurchaseHandler).Methods(http.MethodPost)
	router.HandleFunc("/purchase/{id}", handler.GetPurchaseHandler).Methods(http.MethodGet)
	router.HandleFunc("/purchase/{id}/approve", handler.ApprovePurchaseHandler).Methods(http.MethodPost)
	router.HandleFunc("/purchase/{id}/reject", handler.RejectPurchaseHandler).Methods(http.MethodPost)

	router.HandleFunc("/redemption", handler.RequestRedemptionHandler).Methods(http.MethodPost)
	router.HandleFunc("/redemption/{id}", handler.GetRedemptionHandler).Methods(http.MethodGet)
	router.HandleFunc("/redemption/{id}/approve", handler.ApproveRedemptionHandler).Methods(http.MethodPost)
	router.HandleFunc("/redemption/{id}/reject", handler.RejectRedemptionHandler).Methods(http.MethodPost)

	router.HandleFunc("/balance/{user}", handler.GetBalanceHandler).Methods(http.MethodGet)
	router.HandleFunc("/transactions/{user}", handler.GetTnxHandler).Methods(http.MethodGet)
	router.HandleFunc("/coupons/{user}", handler.GetCouponsHandler).Methods(http.MethodGet)

	router.HandleFunc("/promotions", handler.GetActivePromotionsHandler).Methods(http.MethodGet)
	router.HandleFunc("/promotions/all", handler.GetAllPromotionsHandler).Methods(http.MethodGet)
	router.HandleFunc("/promotion", handler.SavePromotionHandler).Methods(http.MethodPost)
	router.HandleFunc("/promotion/{id}", handler.DeletePromotionHandler).Methods(http.MethodDelete)

	router.HandleFunc("/cards", handler.GetCardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/card", handler.SaveCardHandler).Methods(http.MethodPost)
	router.HandleFunc("/rewards", handler.GetRewardsHandler).Methods(http.MethodGet)
	router.HandleFunc("/reward", handler.SaveRewardHandler).Methods(http.MethodPost)

	router.HandleFunc("/settings", handler.GetSettingsHandler).Methods(http.MethodGet)
	router.HandleFunc("/settings", handler.SaveSettingsHandler).Methods(http.MethodPost)
	router.HandleFunc("/notification", handler.NotifyHandler).Methods(http.MethodPost)

	return handler
}

func (h *LoyaltyHandler) ServeHTTP(w http.ResponseWriter, res *http.Request) {
	h.router.ServeHTTP(w, res)
}

func (h *LoyaltyHandler) Log(msg string, service string, err error) {
	h.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

// код ответа по типу ошибки движка
func httpStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, model.ErrInsufficientPoints):
		return http.StatusConflict
	case errors.Is(err, model.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConfiguration):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (h *LoyaltyHandler) respond(w http.ResponseWriter, service string, data any) {
	j, err := json.Marshal(data)
	if err != nil {
		h.Log("Marshal", service, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(j)
}

// пользователь, выполняющий операцию
func actingUser(req *http.Request) (uuid.UUID, error) {
	return uuid.Parse(req.Header.Get("X-Acting-User"))
}

func pathID(req *http.Request, name string) (uuid.UUID, error) {
	vars := mux.Vars(req)
	return uuid.Parse(vars[name])
}

// Регистрация покупки
func (h *LoyaltyHandler) RegisterPurchaseHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "RegisterPurchaseHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	request := service.PurchaseRequest{}
	err = json.Unmarshal(body, &request)
	if err != nil {
		h.Log("Unmarshal", "RegisterPurchaseHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}

	purchase, err := h.service.Register(req.Context(), request)
	if err != nil {
		h.Log("Register", "RegisterPurchaseHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "RegisterPurchaseHandler", purchase)
}

// Покупка по ID
func (h *LoyaltyHandler) GetPurchaseHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req, "id")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	purchase, err := h.service.GetPurchase(req.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetPurchaseHandler", purchase)
}

type ApproveRequest struct {
	Stamps []service.StampAssign `json:"stamps"`
}

type ApproveResponse struct {
	Coupons []model.Coupon `json:"coupons"`
}

// Подтверждение покупки с назначением штампов
func (h *LoyaltyHandler) ApprovePurchaseHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req, "id")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	acting, err := actingUser(req)
	if err != nil {
		http.Error(w, "X-Acting-User header is not correct", http.StatusForbidden)
		return
	}

	request := ApproveRequest{}
	body, err := io.ReadAll(req.Body)
	if err == nil && len(body) > 0 {
		defer req.Body.Close()
		if err = json.Unmarshal(body, &request); err != nil {
			h.Log("Unmarshal", "ApprovePurchaseHandler", err)
			http.Error(w, "Body is not correct", http.StatusBadRequest)
			return
		}
	}

	coupons, err := h.service.ApprovePurchase(req.Context(), id, request.Stamps, acting)
	if err != nil {
		h.Log("Approve", "ApprovePurchaseHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "ApprovePurchaseHandler", &ApproveResponse{coupons})
}

// Отклонение покупки
func (h *LoyaltyHandler) RejectPurchaseHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req, "id")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	acting, err := actingUser(req)
	if err != nil {
		http.Error(w, "X-Acting-User header is not correct", http.StatusForbidden)
		return
	}
	err = h.service.RejectPurchase(req.Context(), id, acting)
	if err != nil {
		h.Log("Reject", "RejectPurchaseHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

type RedemptionRequest struct {
	User   uuid.UUID `json:"userId"`
	Reward uuid.UUID `json:"rewardId"`
}

// Заявка на обмен баллов
func (h *LoyaltyHandler) RequestRedemptionHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		h.Log("Get request body", "RequestRedemptionHandler", err)
		http.Error(w, "Body is empty", http.StatusBadRequest)
		return
	}
	defer req.Body.Close()

	request := RedemptionRequest{}
	err = json.Unmarshal(body, &request)
	if err != nil {
		h.Log("Unmarshal", "RequestRedemptionHandler", err)
		http.Error(w, "Body is not correct", http.StatusBadRequest)
		return
	}

	redemption, err := h.service.RequestRedemption(req.Context(), request.User, request.Reward)
	if err != nil {
		h.Log("Request", "RequestRedemptionHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "RequestRedemptionHandler", redemption)
}

// Заявка по ID
func (h *LoyaltyHandler) GetRedemptionHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req, "id")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	redemption, err := h.service.GetRedemption(req.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetRedemptionHandler", redemption)
}

// Подтверждение заявки
func (h *LoyaltyHandler) ApproveRedemptionHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req, "id")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	acting, err := actingUser(req)
	if err != nil {
		http.Error(w, "X-Acting-User header is not correct", http.StatusForbidden)
		return
	}
	err = h.service.ApproveRedemption(req.Context(), id, acting)
	if err != nil {
		h.Log("Approve", "ApproveRedemptionHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Отклонение заявки с возвратом баллов
func (h *LoyaltyHandler) RejectRedemptionHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req, "id")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	acting, err := actingUser(req)
	if err != nil {
		http.Error(w, "X-Acting-User header is not correct", http.StatusForbidden)
		return
	}
	err = h.service.RejectRedemption(req.Context(), id, acting)
	if err != nil {
		h.Log("Reject", "RejectRedemptionHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

type BalanceResponse struct {
	Points int64 `json:"points"`
}

// Баланс
func (h *LoyaltyHandler) GetBalanceHandler(w http.ResponseWriter, req *http.Request) {
	user, err := pathID(req, "user")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	points, err := h.service.GetBalance(req.Context(), user)
	if err != nil {
		h.Log("Balance", "GetBalanceHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetBalanceHandler", &BalanceResponse{points})
}

// История транзакций за период
func (h *LoyaltyHandler) GetTnxHandler(w http.ResponseWriter, req *http.Request) {
	user, err := pathID(req, "user")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	from, err := time.Parse("2006-01-02 15:04:05", req.URL.Query().Get("from")+" 00:00:00")
	if err != nil {
		http.Error(w, "from is not correct", http.StatusBadRequest)
		return
	}
	to, err := time.Parse("2006-01-02 15:04:05", req.URL.Query().Get("to")+" 23:59:59")
	if err != nil {
		http.Error(w, "to is not correct", http.StatusBadRequest)
		return
	}
	tnxs, err := h.service.GetTnx(req.Context(), user, from, to)
	if err != nil {
		h.Log("GetTnx", "GetTnxHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetTnxHandler", tnxs)
}

// Купоны пользователя
func (h *LoyaltyHandler) GetCouponsHandler(w http.ResponseWriter, req *http.Request) {
	user, err := pathID(req, "user")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	coupons, err := h.service.GetCoupons(req.Context(), user)
	if err != nil {
		h.Log("GetCoupons", "GetCouponsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetCouponsHandler", coupons)
}

// Активные промо-акции
func (h *LoyaltyHandler) GetActivePromotionsHandler(w http.ResponseWriter, req *http.Request) {
	promos, err := h.service.GetActivePromotions(req.Context())
	if err != nil {
		h.Log("DB get", "GetActivePromotionsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetActivePromotionsHandler", promos)
}

// Все промо-акции
func (h *LoyaltyHandler) GetAllPromotionsHandler(w http.ResponseWriter, req *http.Request) {
	promos, err := h.service.GetAllPromotions(req.Context())
	if err != nil {
		h.Log("DB get", "GetAllPromotionsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetAllPromotionsHandler", promos)
}

// Создать/обновить промо-акцию
func (h *LoyaltyHandler) SavePromotionHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	promo := &model.Promotion{}
	err = json.Unmarshal(body, promo)
	if err != nil {
		h.Log("Unmarshal", "SavePromotionHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = h.service.SavePromotion(req.Context(), *promo)
	if err != nil {
		h.Log("SavePromotion", "SavePromotionHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *LoyaltyHandler) DeletePromotionHandler(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req, "id")
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	err = h.service.DeletePromotion(req.Context(), id)
	if err != nil {
		h.Log("DeletePromotion", "DeletePromotionHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Определения карточек штампов
func (h *LoyaltyHandler) GetCardsHandler(w http.ResponseWriter, req *http.Request) {
	cards, err := h.service.GetCards(req.Context())
	if err != nil {
		h.Log("DB get", "GetCardsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetCardsHandler", cards)
}

func (h *LoyaltyHandler) SaveCardHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	card := &model.LoyaltyCard{}
	err = json.Unmarshal(body, card)
	if err != nil {
		h.Log("Unmarshal", "SaveCardHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = h.service.SaveCard(req.Context(), *card)
	if err != nil {
		h.Log("SaveCard", "SaveCardHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Каталог наград
func (h *LoyaltyHandler) GetRewardsHandler(w http.ResponseWriter, req *http.Request) {
	rewards, err := h.service.GetRewards(req.Context())
	if err != nil {
		h.Log("DB get", "GetRewardsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetRewardsHandler", rewards)
}

func (h *LoyaltyHandler) SaveRewardHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	reward := &model.Reward{}
	err = json.Unmarshal(body, reward)
	if err != nil {
		h.Log("Unmarshal", "SaveRewardHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = h.service.SaveReward(req.Context(), *reward)
	if err != nil {
		h.Log("SaveReward", "SaveRewardHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Глобальные настройки
func (h *LoyaltyHandler) GetSettingsHandler(w http.ResponseWriter, req *http.Request) {
	settings, err := h.service.GetSettings(req.Context())
	if err != nil {
		h.Log("DB get", "GetSettingsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	h.respond(w, "GetSettingsHandler", settings)
}

func (h *LoyaltyHandler) SaveSettingsHandler(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	settings := &model.SystemSettings{}
	err = json.Unmarshal(body, settings)
	if err != nil {
		h.Log("Unmarshal", "SaveSettingsHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = h.service.SaveSettings(req.Context(), *settings)
	if err != nil {
		h.Log("SaveSettings", "SaveSettingsHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}

type NotifyRequest struct {
	Message string `json:"message"`
}

// Общая рассылка
func (h *LoyaltyHandler) NotifyHandler(w http.ResponseWriter, req *http.Request) {
	acting, err := actingUser(req)
	if err != nil {
		http.Error(w, "X-Acting-User header is not correct", http.StatusForbidden)
		return
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer req.Body.Close()
	request := NotifyRequest{}
	err = json.Unmarshal(body, &request)
	if err != nil {
		h.Log("Unmarshal", "NotifyHandler", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	err = h.service.Notify(req.Context(), acting, request.Message)
	if err != nil {
		h.Log("Notify", "NotifyHandler", err)
		http.Error(w, err.Error(), httpStatus(err))
		return
	}
	w.WriteHeader(http.StatusOK)
}
