package controllers

import (
	"log"
	"net/http"

	"ecostep/config"
	"ecostep/services"
	"ecostep/structs"
	"ecostep/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/gin-gonic/gin"
)

// AuthController bundles the Cognito-backed account endpoints.
type AuthController struct {
	Cfg *config.Config
}

func NewAuthController(cfg *config.Config) *AuthController {
	return &AuthController{Cfg: cfg}
}

func (a *AuthController) SignUp(ctx *gin.Context) {
	var request structs.SignUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	client, err := utils.NewCognitoClient(ctx, a.Cfg)
	if err != nil {
		log.Println("Error loading AWS config:", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up"})
		return
	}

	secretHash := utils.GenerateSecretHash(request.Email, a.Cfg.Cognito.AppClientId, a.Cfg.Cognito.AppClientSecret)
	_, err = client.SignUp(ctx, &cognitoidentityprovider.SignUpInput{
		ClientId:   aws.String(a.Cfg.Cognito.AppClientId),
		Password:   aws.String(request.Password),
		SecretHash: aws.String(secretHash),
		Username:   aws.String(request.Email),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(request.Email)},
			{Name: aws.String("nickname"), Value: aws.String(utils.ExtractNameFromEmail(request.Email))},
		},
	})
	if err != nil {
		log.Println("Error during sign-up:", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign up", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Sign-up successful"})
}

func (a *AuthController) VerifyEmail(ctx *gin.Context) {
	var request structs.VerifyEmailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	client, err := utils.NewCognitoClient(ctx, a.Cfg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email"})
		return
	}

	secretHash := utils.GenerateSecretHash(request.Email, a.Cfg.Cognito.AppClientId, a.Cfg.Cognito.AppClientSecret)
	_, err = client.ConfirmSignUp(ctx, &cognitoidentityprovider.ConfirmSignUpInput{
		ClientId:         aws.String(a.Cfg.Cognito.AppClientId),
		ConfirmationCode: aws.String(request.ConfirmationCode),
		Username:         aws.String(request.Email),
		SecretHash:       aws.String(secretHash),
	})
	if err != nil {
		log.Println("Error during email verification:", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify email", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Email verification successful"})
}

func (a *AuthController) Login(ctx *gin.Context) {
	var request structs.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email and password format"})
		return
	}

	client, err := utils.NewCognitoClient(ctx, a.Cfg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	secretHash := utils.GenerateSecretHash(request.Email, a.Cfg.Cognito.AppClientId, a.Cfg.Cognito.AppClientSecret)
	authOutput, err := client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		ClientId: aws.String(a.Cfg.Cognito.AppClientId),
		AuthParameters: map[string]string{
			"USERNAME":    request.Email,
			"PASSWORD":    request.Password,
			"SECRET_HASH": secretHash,
		},
	})
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to sign in", "message": "Invalid email or password"})
		return
	}

	// First login creates the zero-state profile.
	if _, err := services.EnsureProfile(ctx, request.Email); err != nil {
		log.Printf("Failed to ensure profile for %s: %v", request.Email, err)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":     "Sign-in successful",
		"accessToken": *authOutput.AuthenticationResult.AccessToken,
	})
}

func (a *AuthController) ForgotPassword(ctx *gin.Context) {
	var request structs.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": "Check email format"})
		return
	}

	client, err := utils.NewCognitoClient(ctx, a.Cfg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset"})
		return
	}

	secretHash := utils.GenerateSecretHash(request.Email, a.Cfg.Cognito.AppClientId, a.Cfg.Cognito.AppClientSecret)
	_, err = client.ForgotPassword(ctx, &cognitoidentityprovider.ForgotPasswordInput{
		ClientId:   aws.String(a.Cfg.Cognito.AppClientId),
		Username:   aws.String(request.Email),
		SecretHash: aws.String(secretHash),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to initiate password reset", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset initiated. Check your email for further instructions."})
}

func (a *AuthController) ConfirmForgotPassword(ctx *gin.Context) {
	var request structs.ConfirmForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	client, err := utils.NewCognitoClient(ctx, a.Cfg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}

	secretHash := utils.GenerateSecretHash(request.Email, a.Cfg.Cognito.AppClientId, a.Cfg.Cognito.AppClientSecret)
	_, err = client.ConfirmForgotPassword(ctx, &cognitoidentityprovider.ConfirmForgotPasswordInput{
		ClientId:         aws.String(a.Cfg.Cognito.AppClientId),
		Username:         aws.String(request.Email),
		ConfirmationCode: aws.String(request.ConfirmationCode),
		Password:         aws.String(request.NewPassword),
		SecretHash:       aws.String(secretHash),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password", "message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

func (a *AuthController) VerifyToken(ctx *gin.Context) {
	var request structs.VerifyTokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	email, err := utils.ValidateTokenAndFetchEmail(ctx, a.Cfg, request.AccessToken)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Token is valid", "email": email})
}
