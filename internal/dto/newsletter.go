package dto

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=320" example:"jane@example.com"`
}

// SubscribeResponse covers both outcomes: Message is set only when the address was already subscribed.
type SubscribeResponse struct {
	Success      bool   `json:"success" example:"true"`
	Message      string `json:"message,omitempty" example:"Already subscribed"`
	SubscriberID uint   `json:"subscriberId" example:"1"`
}

const AlreadySubscribedMessage = "Already subscribed"
