package services

import (
	"fmt"
	"sort"
	"strings"

	"farm-dashboard/models/crop"
)

const GENERIC_CROP_KEY = "generic"

// DEFAULT_CROP_IMAGE is shown when a profile has no image of its own.
const DEFAULT_CROP_IMAGE = "paper.jpg"

var defaultCropProfiles = []crop.CropProfile{
	{
		Key: "wheat", Name: "Wheat", RainThresholdMm: 8, HumidityThresholdPct: 60,
		Description:        "Wheat prefers moderate moisture; avoid waterlogging.",
		GrowthStageText:    "80% (Good)",
		RecommendedWaterMm: 8,
		ProjectedYieldText: "4.2 tons/ha",
		TipsText:           "Keep soil evenly moist; fertilize at tillering and booting stages.",
		DisplayImageRef:    "wheat.jpg",
	},
	{
		Key: "corn", Name: "Corn", RainThresholdMm: 10, HumidityThresholdPct: 55,
		Description:        "Corn needs higher water during tasseling and grain-fill stages.",
		GrowthStageText:    "85% (Good)",
		RecommendedWaterMm: 12,
		ProjectedYieldText: "6.0 tons/ha",
		TipsText:           "Ensure adequate N; irrigate heavily during tassel and grain-fill.",
		DisplayImageRef:    "corn.jpg",
	},
	{
		Key: "potatoes", Name: "Potatoes", RainThresholdMm: 6, HumidityThresholdPct: 60,
		Description:        "Potatoes like consistent moisture; avoid drought stress.",
		GrowthStageText:    "78% (Fair)",
		RecommendedWaterMm: 10,
		ProjectedYieldText: "20 tons/ha",
		TipsText:           "Maintain even moisture; avoid overwatering during tuber bulking.",
		DisplayImageRef:    "potato.jpg",
	},
	{
		Key: "tomatoes", Name: "Tomatoes", RainThresholdMm: 5, HumidityThresholdPct: 55,
		Description:        "Tomatoes need steady moisture and good sunlight; watch for fungal disease in high humidity.",
		GrowthStageText:    "95% (Excellent)",
		RecommendedWaterMm: 10,
		ProjectedYieldText: "12.5 tons/ha",
		TipsText:           "Provide 6-8 hours sunlight; use drip irrigation to reduce disease.",
		DisplayImageRef:    "tomato.jpg",
	},
	{
		Key: "peppers", Name: "Peppers", RainThresholdMm: 5, HumidityThresholdPct: 55,
		Description:        "Peppers prefer well-drained soils and regular irrigation.",
		GrowthStageText:    "88% (Good)",
		RecommendedWaterMm: 8,
		ProjectedYieldText: "7.0 tons/ha",
		TipsText:           "Avoid waterlogged soils; feed during fruiting.",
		DisplayImageRef:    "paper.jpg",
	},
	{
		Key: "apples", Name: "Apples", RainThresholdMm: 7, HumidityThresholdPct: 60,
		Description:        "Apples need balanced water; monitor during fruit set and enlargement.",
		GrowthStageText:    "82% (Good)",
		RecommendedWaterMm: 10,
		ProjectedYieldText: "30 tons/ha",
		TipsText:           "Thin excess fruit and monitor calcium levels to avoid blossom end rot.",
		DisplayImageRef:    "apple.jpg",
	},
	{
		Key: "grapes", Name: "Grapes", RainThresholdMm: 4, HumidityThresholdPct: 50,
		Description:        "Grapes tolerate drier conditions; excess water can reduce quality.",
		GrowthStageText:    "90% (Good)",
		RecommendedWaterMm: 5,
		ProjectedYieldText: "10 tons/ha",
		TipsText:           "Control vigor with deficit irrigation; avoid high humidity during ripening.",
		DisplayImageRef:    "graps.jpg",
	},
	{
		Key: "lettuce", Name: "Lettuce", RainThresholdMm: 6, HumidityThresholdPct: 65,
		Description:        "Lettuce prefers cool, moist conditions and partial shade in heat.",
		GrowthStageText:    "75% (Fair)",
		RecommendedWaterMm: 6,
		ProjectedYieldText: "25 tons/ha",
		TipsText:           "Keep soil cool and moist; use shade in summer to prevent bolting.",
		DisplayImageRef:    "luttuce.jpg",
	},
}

// GenericCropProfile holds the thresholds used when no crop is selected.
func GenericCropProfile() crop.CropProfile {
	return crop.CropProfile{
		Key:                  GENERIC_CROP_KEY,
		Name:                 "generic",
		RainThresholdMm:      5,
		HumidityThresholdPct: 55,
	}
}

// NormalizeCropKey lower-cases and trims a selector value.
func NormalizeCropKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// CropCatalog is the fixed, read-only set of crop profiles.
type CropCatalog struct {
	profiles map[string]crop.CropProfile
}

// NewCropCatalog builds the catalog with the built-in profiles.
func NewCropCatalog() *CropCatalog {
	c, err := NewCropCatalogFromProfiles(defaultCropProfiles)
	if err != nil {
		panic(fmt.Sprintf("built-in crop catalog is invalid: %v", err))
	}
	return c
}

// NewCropCatalogFromProfiles validates every profile and indexes it by key.
func NewCropCatalogFromProfiles(profiles []crop.CropProfile) (*CropCatalog, error) {
	c := &CropCatalog{profiles: make(map[string]crop.CropProfile, len(profiles))}
	for _, p := range profiles {
		p.Key = NormalizeCropKey(p.Key)
		if p.Key == "" {
			return nil, fmt.Errorf("crop %q has an empty key", p.Name)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.profiles[p.Key]; dup {
			return nil, fmt.Errorf("duplicate crop key %q", p.Key)
		}
		c.profiles[p.Key] = p
	}
	return c, nil
}

// Lookup finds a profile by key; "Tomatoes" and "tomatoes" are the same crop.
func (c *CropCatalog) Lookup(key string) (crop.CropProfile, bool) {
	p, ok := c.profiles[NormalizeCropKey(key)]
	return p, ok
}

// Resolve returns the profile for key, or the generic profile.
func (c *CropCatalog) Resolve(key string) crop.CropProfile {
	if p, ok := c.Lookup(key); ok {
		return p
	}
	return GenericCropProfile()
}

// Keys returns the catalog keys in sorted order.
func (c *CropCatalog) Keys() []string {
	keys := make([]string, 0, len(c.profiles))
	for k := range c.profiles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every profile ordered by key.
func (c *CropCatalog) All() []crop.CropProfile {
	out := make([]crop.CropProfile, 0, len(c.profiles))
	for _, k := range c.Keys() {
		out = append(out, c.profiles[k])
	}
	return out
}

// BuildCropView projects a selection onto the crop panel fields.
func BuildCropView(profile *crop.CropProfile) crop.CropView {
	if profile == nil {
		return crop.CropView{Name: "—"}
	}
	image := profile.DisplayImageRef
	if image == "" {
		image = DEFAULT_CROP_IMAGE
	}
	return crop.CropView{
		Selected:        true,
		Key:             profile.Key,
		Name:            profile.Name,
		Description:     profile.Description,
		Growth:          profile.GrowthStageText,
		SoilMoisture:    fmt.Sprintf("%d%%", int(roundHalfUp(profile.HumidityThresholdPct-5))),
		NextIrrigation:  "Tomorrow",
		RecommendedText: "Recommended: " + formatNumber(profile.RecommendedWaterMm) + "mm",
		ProjectedYield:  profile.ProjectedYieldText,
		HeroTitle:       "Optimal Growth Tips for " + profile.Name,
		Image:           image,
		Tips:            profile.TipsText,
	}
}
