package languages

import (
	"path/filepath"
	"sort"
	"strings"
)

// FamilyDescriptor 用于对外展示注释家族及其后缀信息。
type FamilyDescriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理注释家族注册与后缀映射。
// 注册中心在进程启动时构建一次，之后只读，可安全跨 goroutine 共享。
type Registry struct {
	profiles     []*Profile
	profileByExt map[string]*Profile
}

// NewRegistry 创建并注册所有内置注释家族。
func NewRegistry() *Registry {
	profiles := []*Profile{
		newHashProfile(),
		newCLikeProfile(),
		newCLikeLineProfile(),
		newXMLProfile(),
		newCSSProfile(),
		newPHPProfile(),
	}

	registry := &Registry{
		profiles:     profiles,
		profileByExt: make(map[string]*Profile),
	}

	for _, profile := range profiles {
		for _, ext := range profile.Extensions {
			registry.profileByExt[strings.ToLower(ext)] = profile
		}
	}

	return registry
}

// ProfileForFile 根据文件后缀查找注释家族。
// 找不到表示“未知注释语法”，属于正常情况而非错误。
func (r *Registry) ProfileForFile(path string) (*Profile, bool) {
	return r.ProfileForExtension(filepath.Ext(path))
}

// ProfileForExtension 根据后缀（含点号，大小写不敏感）查找注释家族。
func (r *Registry) ProfileForExtension(extension string) (*Profile, bool) {
	profile, ok := r.profileByExt[strings.ToLower(extension)]
	return profile, ok
}

// Families 返回已注册家族清单。
func (r *Registry) Families() []FamilyDescriptor {
	result := make([]FamilyDescriptor, 0, len(r.profiles))
	for _, profile := range r.profiles {
		extensions := append([]string(nil), profile.Extensions...)
		sort.Strings(extensions)
		result = append(result, FamilyDescriptor{
			Name:       profile.Name,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForFamily 返回指定家族对应的全部后缀。
func (r *Registry) ExtensionsForFamily(family string) []string {
	for _, profile := range r.profiles {
		if profile.Name == family {
			extensions := append([]string(nil), profile.Extensions...)
			sort.Strings(extensions)
			return extensions
		}
	}
	return nil
}
