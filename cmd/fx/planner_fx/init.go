package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"itinera/internal/services"
	"itinera/pkg/utils"
)

var Module = fx.Provide(providePlannerClient, providePlannerService)

func providePlannerClient() utils.PlannerClientInterface {
	if os.Getenv("PLANNER_PROVIDER") == "openai" {
		return utils.NewOpenAIPlannerClient(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	}

	client, err := utils.NewGeminiPlannerClient(os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create planner client: %v", err)
	}
	return client
}

func providePlannerService(client utils.PlannerClientInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(client)
}
