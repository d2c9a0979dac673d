package services

import (
	"context"
	"strings"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"github.com/atenaxx1412/nutrition-ai-gpTs/nutrition"
	"github.com/atenaxx1412/nutrition-ai-gpTs/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/google/uuid"
)

// RekognitionAPI is the part of the Rekognition client the recognizer calls.
type RekognitionAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type RekognitionService struct {
	client  RekognitionAPI
	timeout time.Duration
}

func NewRekognitionService(client RekognitionAPI, timeout time.Duration) *RekognitionService {
	return &RekognitionService{client: client, timeout: timeout}
}

func NewRekognitionServiceFromEnv(ctx context.Context, region string, timeout time.Duration) (*RekognitionService, error) {
	cfg, err := utils.LoadAWSConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return NewRekognitionService(rekognition.NewFromConfig(cfg), timeout), nil
}

// Analyze runs one DetectLabels call. Labels carrying instance boxes are used
// first, with portions sized from the box area; when none of them resolve to
// a known food the plain label list is used instead.
func (r *RekognitionService) Analyze(ctx context.Context, image []byte) (*models.ImageAnalysisResult, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(20),
		MinConfidence: aws.Float32(60),
	})
	if err != nil {
		return nil, upstream("rekognition detect labels", err)
	}

	foods := objectsToFoods(out.Labels)
	if len(foods) == 0 {
		foods = labelsToFoods(out.Labels)
	}

	return &models.ImageAnalysisResult{
		DetectedFoods:  foods,
		TotalNutrition: nutrition.AggregateDetected(foods),
		Confidence:     meanConfidence(foods),
		AnalysisTime:   time.Now().UTC(),
	}, nil
}

func objectsToFoods(labels []types.Label) []models.DetectedFood {
	foods := []models.DetectedFood{}
	for _, l := range labels {
		name := nutrition.Resolve(labelName(l))
		if name == nutrition.Unknown {
			continue
		}
		profile, _ := nutrition.Lookup(name)
		for _, inst := range l.Instances {
			box := toBox(inst.BoundingBox)
			conf := aws.ToFloat32(inst.Confidence)
			if conf == 0 {
				conf = aws.ToFloat32(l.Confidence)
			}
			foods = append(foods, models.DetectedFood{
				ID:                uuid.NewString(),
				Name:              name,
				Confidence:        float64(conf) / 100,
				BoundingBox:       box,
				EstimatedQuantity: EstimatePortion(box),
				Unit:              "g",
				Nutrition:         profile,
				Category:          "detected",
			})
		}
	}
	return foods
}

func labelsToFoods(labels []types.Label) []models.DetectedFood {
	foods := []models.DetectedFood{}
	for _, l := range labels {
		label := labelName(l)
		if !nutrition.IsFoodRelated(label) {
			continue
		}
		name := nutrition.Resolve(label)
		if name == nutrition.Unknown {
			continue
		}
		profile, _ := nutrition.Lookup(name)
		foods = append(foods, models.DetectedFood{
			ID:                uuid.NewString(),
			Name:              name,
			Confidence:        float64(aws.ToFloat32(l.Confidence)) / 100,
			EstimatedQuantity: defaultEstimatedWeight,
			Unit:              "g",
			Nutrition:         profile,
			Category:          "detected",
		})
	}
	return foods
}

// EstimatePortion guesses grams from how much of the frame the food covers.
func EstimatePortion(box *models.BoundingBox) float64 {
	if box == nil {
		return defaultEstimatedWeight
	}
	area := box.Width * box.Height
	switch {
	case area < 0.1:
		return 50
	case area < 0.3:
		return 100
	case area < 0.6:
		return 150
	default:
		return 200
	}
}

func toBox(b *types.BoundingBox) *models.BoundingBox {
	if b == nil {
		return nil
	}
	return &models.BoundingBox{
		X:      float64(aws.ToFloat32(b.Left)),
		Y:      float64(aws.ToFloat32(b.Top)),
		Width:  float64(aws.ToFloat32(b.Width)),
		Height: float64(aws.ToFloat32(b.Height)),
	}
}

func labelName(l types.Label) string {
	return strings.ToLower(aws.ToString(l.Name))
}

func meanConfidence(foods []models.DetectedFood) float64 {
	if len(foods) == 0 {
		return defaultOverallConf
	}
	var sum float64
	for _, f := range foods {
		sum += f.Confidence
	}
	return sum / float64(len(foods))
}
