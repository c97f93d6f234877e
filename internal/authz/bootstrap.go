package authz

import "fmt"

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role      string
	Inherits  []string
	Policies  []Policy
	Immutable bool
}

// BuiltinRoleSeeds 系统预置角色矩阵
// buyer 覆盖购物链路，seller 继承 buyer 并获得商品与销售管理，admin 继承 seller 并获得后台全量权限。
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "buyer",
			Policies: []Policy{
				{Object: "/me", Action: "GET"},
				{Object: "/me/profile", Action: "PUT"},
				{Object: "/me/password", Action: "PUT"},
				{Object: "/me/onboarding", Action: "POST"},
				{Object: "/cart", Action: "*"},
				{Object: "/cart/items", Action: "*"},
				{Object: "/cart/items/:id", Action: "*"},
				{Object: "/orders", Action: "GET"},
				{Object: "/orders", Action: "POST"},
				{Object: "/orders/:id", Action: "GET"},
				{Object: "/ratings", Action: "POST"},
				{Object: "/comments", Action: "POST"},
				{Object: "/comments/:id", Action: "DELETE"},
			},
			Immutable: true,
		},
		{
			Role:     "seller",
			Inherits: []string{"buyer"},
			Policies: []Policy{
				{Object: "/seller/products", Action: "*"},
				{Object: "/seller/products/:id", Action: "*"},
				{Object: "/seller/sales", Action: "GET"},
			},
			Immutable: true,
		},
		{
			Role:     "admin",
			Inherits: []string{"seller"},
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
			Immutable: true,
		},
	}
}

// BootstrapBuiltinRoles 初始化预置角色与默认策略
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, roleAnchor)
		if err != nil {
			return fmt.Errorf("check builtin role failed: %w", err)
		}
		if !exists {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleAnchor); err != nil {
				return fmt.Errorf("create builtin role failed: %w", err)
			}
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}

	return nil
}
